package settings

import (
	"encoding/json"
	"fmt"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/pkg/storage"

	"go.uber.org/zap"
)

// backupDoc is the backup file layout: the five collections as top-level
// keys. Pointer fields distinguish "absent from the file" from "present but
// empty" on import.
type backupDoc struct {
	Customers      *[]models.Customer      `json:"customers,omitempty"`
	ServiceOrders  *[]models.ServiceOrder  `json:"serviceOrders,omitempty"`
	Products       *[]models.Product       `json:"products,omitempty"`
	Sales          *[]models.Sale          `json:"sales,omitempty"`
	StockMovements *[]models.StockMovement `json:"stockMovements,omitempty"`
}

// Export serializes all five collections into one downloadable document.
func (s *Service) Export() ([]byte, error) {
	state := s.loadState()
	doc := backupDoc{
		Customers:      &state.Customers,
		ServiceOrders:  &state.ServiceOrders,
		Products:       &state.Products,
		Sales:          &state.Sales,
		StockMovements: &state.StockMovements,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses an uploaded backup document and overwrites each collection
// present in it. A malformed document is rejected before any write, so a
// failed import has zero side effects. The write goes through the storage
// adapter only: the live state container keeps serving the old data until
// the application is restarted.
func (s *Service) Import(data []byte) error {
	var doc backupDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}

	state := s.loadState()
	if doc.Customers != nil {
		state.Customers = *doc.Customers
	}
	if doc.ServiceOrders != nil {
		state.ServiceOrders = *doc.ServiceOrders
	}
	if doc.Products != nil {
		state.Products = *doc.Products
	}
	if doc.Sales != nil {
		state.Sales = *doc.Sales
	}
	if doc.StockMovements != nil {
		state.StockMovements = *doc.StockMovements
	}

	out, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serialize imported state: %w", err)
	}
	if err := s.storage.Write(storage.KeyAppState, out); err != nil {
		return fmt.Errorf("persist imported state: %w", err)
	}

	s.log.Info("backup imported",
		zap.Int("customers", len(state.Customers)),
		zap.Int("products", len(state.Products)),
		zap.Int("sales", len(state.Sales)),
	)
	return nil
}

// loadState reads the primary state document, falling back to empty
// collections like the container does on startup.
func (s *Service) loadState() *models.AppState {
	state := models.EmptyState()
	data, ok, err := s.storage.Read(storage.KeyAppState)
	if err != nil || !ok {
		return state
	}
	if err := json.Unmarshal(data, state); err != nil {
		return models.EmptyState()
	}
	return state
}
