package models

import (
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"minStock"`
	Supplier  string    `json:"supplier,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LowStock reports whether the product is at or below its minimum level.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

type MovementType string

const (
	MovementIn      MovementType = "in"
	MovementOut     MovementType = "out"
	MovementSale    MovementType = "sale"
	MovementService MovementType = "service"
)

// Decreasing reports whether the movement type reduces product stock.
func (t MovementType) Decreasing() bool {
	return t == MovementOut || t == MovementSale || t == MovementService
}

func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementSale, MovementService:
		return true
	}
	return false
}

// StockMovement is one entry of the append-only stock log. Quantity is
// signed: positive for "in", negative for the decreasing types.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	CreatedAt time.Time    `json:"createdAt"`
}
