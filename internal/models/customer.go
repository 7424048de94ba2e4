package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastService *time.Time `json:"lastService,omitempty"`
}

// NewID generates the identifier used by every record type.
func NewID() string {
	return uuid.NewString()
}
