package store

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

func (in *CustomerInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	return nil
}

func (s *Store) AddCustomer(in CustomerInput) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}

	customer := models.Customer{
		ID:        models.NewID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: s.now(),
	}

	next := *s.state
	next.Customers = append(append([]models.Customer{}, s.state.Customers...), customer)

	if err := s.commit(&next); err != nil {
		return models.Customer{}, err
	}
	s.log.Info("customer added", zap.String("id", customer.ID))
	return customer, nil
}

// UpdateCustomer replaces the stored customer with the same id. An unknown
// id is rejected with ErrNotFound rather than silently ignored.
func (s *Store) UpdateCustomer(customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := CustomerInput{Name: customer.Name, Phone: customer.Phone, Email: customer.Email}
	if err := in.validate(); err != nil {
		return models.Customer{}, err
	}
	customer.Name, customer.Phone, customer.Email = in.Name, in.Phone, in.Email

	idx := -1
	for i := range s.state.Customers {
		if s.state.Customers[i].ID == customer.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Customer{}, fmt.Errorf("customer %s: %w", customer.ID, ErrNotFound)
	}

	// CreatedAt is immutable; keep the stored value. LastService survives an
	// update that does not carry it.
	customer.CreatedAt = s.state.Customers[idx].CreatedAt
	if customer.LastService == nil {
		customer.LastService = s.state.Customers[idx].LastService
	}

	next := *s.state
	next.Customers = append([]models.Customer{}, s.state.Customers...)
	next.Customers[idx] = customer

	if err := s.commit(&next); err != nil {
		return models.Customer{}, err
	}
	s.log.Info("customer updated", zap.String("id", customer.ID))
	return customer, nil
}
