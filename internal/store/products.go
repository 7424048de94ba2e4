package store

import (
	"fmt"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"

	"go.uber.org/zap"
)

type ProductInput struct {
	Name     string
	Category string
	Price    float64
	Stock    int
	MinStock int
	Supplier string
}

func (in *ProductInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)

	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if in.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock must not be negative", ErrValidation)
	}
	return nil
}

func (s *Store) AddProduct(in ProductInput) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := in.validate(); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:        models.NewID(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		Supplier:  in.Supplier,
		CreatedAt: s.now(),
	}

	next := *s.state
	next.Products = append(append([]models.Product{}, s.state.Products...), product)

	if err := s.commit(&next); err != nil {
		return models.Product{}, err
	}
	s.log.Info("product added", zap.String("id", product.ID), zap.Int("stock", product.Stock))
	return product, nil
}

// UpdateProduct replaces the stored product with the same id. An unknown id
// is rejected with ErrNotFound.
func (s *Store) UpdateProduct(product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := ProductInput{
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
		MinStock: product.MinStock,
		Supplier: product.Supplier,
	}
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	product.Name, product.Category = in.Name, in.Category

	idx := -1
	for i := range s.state.Products {
		if s.state.Products[i].ID == product.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}

	product.CreatedAt = s.state.Products[idx].CreatedAt

	next := *s.state
	next.Products = append([]models.Product{}, s.state.Products...)
	next.Products[idx] = product

	if err := s.commit(&next); err != nil {
		return models.Product{}, err
	}
	s.log.Info("product updated", zap.String("id", product.ID))
	return product, nil
}

type MovementInput struct {
	ProductID string
	Type      models.MovementType
	Quantity  int
	Reason    string
}

// RegisterMovement records one manual stock movement and applies the matching
// product update in the same accepted operation. Decreasing movements are
// rejected before any mutation when the requested quantity exceeds current
// stock, so product stock never goes negative through this path.
func (s *Store) RegisterMovement(in MovementInput) (models.StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !in.Type.Valid() {
		return models.StockMovement{}, fmt.Errorf("%w: unknown movement type %q", ErrValidation, in.Type)
	}
	if in.Quantity <= 0 {
		return models.StockMovement{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.Reason) == "" {
		return models.StockMovement{}, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	product := s.state.FindProduct(in.ProductID)
	if product == nil {
		return models.StockMovement{}, fmt.Errorf("product %s: %w", in.ProductID, ErrProductNotFound)
	}

	signed := in.Quantity
	newStock := product.Stock + in.Quantity
	if in.Type.Decreasing() {
		if in.Quantity > product.Stock {
			return models.StockMovement{}, fmt.Errorf(
				"%w: requested %d, only %d available for %s",
				ErrInsufficientStock, in.Quantity, product.Stock, product.Name,
			)
		}
		signed = -in.Quantity
		newStock = product.Stock - in.Quantity
	}

	movement := models.StockMovement{
		ID:        models.NewID(),
		ProductID: product.ID,
		Type:      in.Type,
		Quantity:  signed,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: s.now(),
	}

	next := *s.state
	next.Products = append([]models.Product{}, s.state.Products...)
	for i := range next.Products {
		if next.Products[i].ID == product.ID {
			next.Products[i].Stock = newStock
			break
		}
	}
	next.StockMovements = append(append([]models.StockMovement{}, s.state.StockMovements...), movement)

	if err := s.commit(&next); err != nil {
		return models.StockMovement{}, err
	}
	s.log.Info("stock movement registered",
		zap.String("product", product.ID),
		zap.String("type", string(in.Type)),
		zap.Int("quantity", signed),
		zap.Int("stock", newStock),
	)
	return movement, nil
}
