package models

import (
	"time"
)

type ServiceStatus string

const (
	StatusAnalyzing ServiceStatus = "analyzing"
	StatusRepairing ServiceStatus = "repairing"
	StatusCompleted ServiceStatus = "completed"
	StatusDelivered ServiceStatus = "delivered"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case StatusAnalyzing, StatusRepairing, StatusCompleted, StatusDelivered:
		return true
	}
	return false
}

// Label returns the human-readable status used on printed documents.
func (s ServiceStatus) Label() string {
	switch s {
	case StatusAnalyzing:
		return "Under Analysis"
	case StatusRepairing:
		return "Under Repair"
	case StatusCompleted:
		return "Completed"
	case StatusDelivered:
		return "Delivered"
	}
	return string(s)
}

// ServiceOrder tracks one repair job. CustomerName is a snapshot taken when
// the order is created; later customer edits do not rewrite it.
type ServiceOrder struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Device        string        `json:"device"`
	Issue         string        `json:"issue"`
	Status        ServiceStatus `json:"status"`
	EstimatedCost float64       `json:"estimatedCost,omitempty"`
	FinalCost     float64       `json:"finalCost,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}
