package store

import (
	"fmt"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"

	"go.uber.org/zap"
)

type ServiceOrderInput struct {
	CustomerID    string
	Device        string
	Issue         string
	Status        models.ServiceStatus
	EstimatedCost float64
	Notes         string
}

func (in *ServiceOrderInput) validate() error {
	in.Device = strings.TrimSpace(in.Device)
	in.Issue = strings.TrimSpace(in.Issue)

	if in.Device == "" {
		return fmt.Errorf("%w: device is required", ErrValidation)
	}
	if in.Issue == "" {
		return fmt.Errorf("%w: issue is required", ErrValidation)
	}
	if in.Status == "" {
		in.Status = models.StatusAnalyzing
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	return nil
}

// AddServiceOrder creates a repair order for an existing customer. The
// customer's name is snapshotted onto the order so later edits to the
// customer record do not rewrite history.
func (s *Store) AddServiceOrder(in ServiceOrderInput) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := in.validate(); err != nil {
		return models.ServiceOrder{}, err
	}

	customer := s.state.FindCustomer(in.CustomerID)
	if customer == nil {
		return models.ServiceOrder{}, fmt.Errorf("customer %s: %w", in.CustomerID, ErrCustomerNotFound)
	}

	now := s.now()
	order := models.ServiceOrder{
		ID:            models.NewID(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Device:        in.Device,
		Issue:         in.Issue,
		Status:        in.Status,
		EstimatedCost: in.EstimatedCost,
		Notes:         in.Notes,
		CreatedAt:     now,
	}
	if order.Status == models.StatusCompleted {
		order.CompletedAt = &now
	}

	next := *s.state
	next.ServiceOrders = append(append([]models.ServiceOrder{}, s.state.ServiceOrders...), order)

	if err := s.commit(&next); err != nil {
		return models.ServiceOrder{}, err
	}
	s.log.Info("service order added", zap.String("id", order.ID), zap.String("customer", customer.ID))
	return order, nil
}

// UpdateServiceOrder replaces the stored order with the same id. CompletedAt
// is stamped exactly once, on the first transition into "completed", and is
// never overwritten afterwards, regardless of what the caller sends.
func (s *Store) UpdateServiceOrder(order models.ServiceOrder) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Same normalization as create, but a blank status is rejected here
	// instead of defaulted: an update must say which state the order is in.
	if !order.Status.Valid() {
		return models.ServiceOrder{}, fmt.Errorf("%w: unknown status %q", ErrValidation, order.Status)
	}
	in := ServiceOrderInput{Device: order.Device, Issue: order.Issue, Status: order.Status}
	if err := in.validate(); err != nil {
		return models.ServiceOrder{}, err
	}
	order.Device, order.Issue = in.Device, in.Issue

	idx := -1
	for i := range s.state.ServiceOrders {
		if s.state.ServiceOrders[i].ID == order.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ServiceOrder{}, fmt.Errorf("service order %s: %w", order.ID, ErrNotFound)
	}
	existing := s.state.ServiceOrders[idx]

	// Snapshots and the creation timestamp are immutable.
	order.CustomerID = existing.CustomerID
	order.CustomerName = existing.CustomerName
	order.CreatedAt = existing.CreatedAt

	order.CompletedAt = existing.CompletedAt
	if order.Status == models.StatusCompleted && existing.CompletedAt == nil {
		completed := s.now()
		order.CompletedAt = &completed
	}

	next := *s.state
	next.ServiceOrders = append([]models.ServiceOrder{}, s.state.ServiceOrders...)
	next.ServiceOrders[idx] = order

	if err := s.commit(&next); err != nil {
		return models.ServiceOrder{}, err
	}
	s.log.Info("service order updated", zap.String("id", order.ID), zap.String("status", string(order.Status)))
	return order, nil
}
