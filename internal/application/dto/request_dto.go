package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequestRequest input for publishing a freight request.
type CreateRequestRequest struct {
	CargoType        string          `json:"cargoType" validate:"required,min=1,max=200"`
	Weight           decimal.Decimal `json:"weight" validate:"required"`
	NumberOfItems    int             `json:"numberOfItems" validate:"required,min=1"`
	PickupLocation   string          `json:"pickupLocation" validate:"required,min=1,max=300"`
	DeliveryLocation string          `json:"deliveryLocation" validate:"required,min=1,max=300"`
	SpecialNeeds     string          `json:"specialNeeds"`
}

// UpdateRequestRequest partial update of the mutable fields (active requests only).
type UpdateRequestRequest struct {
	CargoType        *string          `json:"cargoType" validate:"omitempty,min=1,max=200"`
	Weight           *decimal.Decimal `json:"weight"`
	NumberOfItems    *int             `json:"numberOfItems" validate:"omitempty,min=1"`
	PickupLocation   *string          `json:"pickupLocation" validate:"omitempty,min=1,max=300"`
	DeliveryLocation *string          `json:"deliveryLocation" validate:"omitempty,min=1,max=300"`
	SpecialNeeds     *string          `json:"specialNeeds"`
}

// ChangeStatusRequest input for a status transition.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// BrowseFilter advisory substring filters for the browse list. Matching is
// case-insensitive; Location matches pickup or delivery.
type BrowseFilter struct {
	CargoType string `query:"cargoType"`
	Location  string `query:"location"`
}

// RequestResponse freight request output. CompanyName is resolved for browse
// views and empty where the company lookup failed or the company was removed.
type RequestResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	UserID           string          `json:"userId"`
	CargoType        string          `json:"cargoType"`
	Weight           decimal.Decimal `json:"weight"`
	NumberOfItems    int             `json:"numberOfItems"`
	PickupLocation   string          `json:"pickupLocation"`
	DeliveryLocation string          `json:"deliveryLocation"`
	SpecialNeeds     string          `json:"specialNeeds,omitempty"`
	Status           string          `json:"status"`
	CompanyName      string          `json:"companyName,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// RequestListResponse list of freight requests.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
	Total int               `json:"total"`
}

// RequestDetailResponse detail view with resolved company and creator contact.
type RequestDetailResponse struct {
	RequestResponse
	Company *CompanyResponse `json:"company,omitempty"`
	Contact *ContactInfo     `json:"contact,omitempty"`
}

// ContactInfo creator contact shown on the detail view.
type ContactInfo struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
