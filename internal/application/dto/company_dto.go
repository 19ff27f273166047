package dto

import "time"

// RegisterCompanyRequest input for company registration.
type RegisterCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200"`
	OrganizationNumber string `json:"organizationNumber" validate:"required,min=1,max=20"`
	ContactEmail       string `json:"contactEmail" validate:"required,email"`
	Description        string `json:"description"`
}

// UpdateCompanyRequest partial company update (optional fields).
type UpdateCompanyRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=200"`
	OrganizationNumber *string `json:"organizationNumber" validate:"omitempty,min=1,max=20"`
	ContactEmail       *string `json:"contactEmail" validate:"omitempty,email"`
	Description        *string `json:"description"`
}

// CompanyResponse company output.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	OrganizationNumber string    `json:"organizationNumber"`
	ContactEmail       string    `json:"contactEmail"`
	Description        string    `json:"description"`
	Approved           bool      `json:"approved"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CompanyListResponse list of companies (admin pending queue).
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Total int               `json:"total"`
}
