package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Freight request statuses. Active is the only initial state; completed and
// cancelled are terminal.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatusTransition reports whether from→to is an allowed status change.
// Only active→completed and active→cancelled exist; terminal states freeze.
func ValidStatusTransition(from, to string) bool {
	if from != StatusActive {
		return false
	}
	return to == StatusCompleted || to == StatusCancelled
}

// FreightRequest is a buyer-company's posting describing cargo needing
// transport. CompanyID/UserID are fixed for the record's lifetime.
type FreightRequest struct {
	ID               string
	CompanyID        string
	UserID           string // creator
	CargoType        string
	Weight           decimal.Decimal // kg, > 0
	NumberOfItems    int             // > 0
	PickupLocation   string
	DeliveryLocation string
	SpecialNeeds     string // optional
	Status           string // active, completed, cancelled
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
