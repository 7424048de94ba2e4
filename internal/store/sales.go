package store

import (
	"fmt"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"

	"go.uber.org/zap"
)

type SaleLine struct {
	ProductID string
	Quantity  int
}

type SaleDraft struct {
	CustomerID    string
	Items         []SaleLine
	PaymentMethod models.PaymentMethod
}

// RecordSale validates every line against current stock before touching any
// state, then appends the sale, one "sale" movement per line and the matching
// product stock updates as a single accepted operation. Product name and unit
// price are snapshotted from the product at sale time.
func (s *Store) RecordSale(draft SaleDraft) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(draft.Items) == 0 {
		return models.Sale{}, fmt.Errorf("%w: sale has no items", ErrValidation)
	}
	if !draft.PaymentMethod.Valid() {
		return models.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, draft.PaymentMethod)
	}

	var customerName string
	if draft.CustomerID != "" {
		customer := s.state.FindCustomer(draft.CustomerID)
		if customer == nil {
			return models.Sale{}, fmt.Errorf("customer %s: %w", draft.CustomerID, ErrCustomerNotFound)
		}
		customerName = customer.Name
	}

	// Reject everything before mutating anything. Quantities are summed per
	// product so a sale with two lines of the same product cannot oversell.
	requested := make(map[string]int, len(draft.Items))
	for _, line := range draft.Items {
		if line.Quantity <= 0 {
			return models.Sale{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		requested[line.ProductID] += line.Quantity
	}
	for productID, qty := range requested {
		product := s.state.FindProduct(productID)
		if product == nil {
			return models.Sale{}, fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
		}
		if qty > product.Stock {
			return models.Sale{}, fmt.Errorf(
				"%w: requested %d, only %d available for %s",
				ErrInsufficientStock, qty, product.Stock, product.Name,
			)
		}
	}

	now := s.now()
	sale := models.Sale{
		ID:            models.NewID(),
		CustomerID:    draft.CustomerID,
		CustomerName:  customerName,
		Items:         make([]models.SaleItem, 0, len(draft.Items)),
		PaymentMethod: draft.PaymentMethod,
		CreatedAt:     now,
	}

	next := *s.state
	next.Products = append([]models.Product{}, s.state.Products...)
	next.StockMovements = append([]models.StockMovement{}, s.state.StockMovements...)

	for _, line := range draft.Items {
		product := s.state.FindProduct(line.ProductID)

		item := models.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			Total:       product.Price * float64(line.Quantity),
		}
		sale.Items = append(sale.Items, item)
		sale.Total += item.Total

		for i := range next.Products {
			if next.Products[i].ID == product.ID {
				next.Products[i].Stock -= line.Quantity
				break
			}
		}

		next.StockMovements = append(next.StockMovements, models.StockMovement{
			ID:        models.NewID(),
			ProductID: product.ID,
			Type:      models.MovementSale,
			Quantity:  -line.Quantity,
			Reason:    fmt.Sprintf("Sale %s", sale.ID),
			CreatedAt: now,
		})
	}

	next.Sales = append(append([]models.Sale{}, s.state.Sales...), sale)

	if err := s.commit(&next); err != nil {
		return models.Sale{}, err
	}
	s.log.Info("sale recorded",
		zap.String("id", sale.ID),
		zap.Int("items", len(sale.Items)),
		zap.Float64("total", sale.Total),
	)
	return sale, nil
}
