package models

import (
	"time"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentPix      PaymentMethod = "pix"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Card"
	case PaymentTransfer:
		return "Bank Transfer"
	}
	return string(m)
}

// SaleItem snapshots the product name and unit price at sale time.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Sale is immutable once recorded; there is no update operation for it.
type Sale struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId,omitempty"`
	CustomerName  string        `json:"customerName,omitempty"`
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}
