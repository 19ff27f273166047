package dto

import "time"

// RegisterRequest input for account registration. Role is buyer or seller;
// superadmin accounts are seeded out-of-band and rejected here.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

// LoginRequest input for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest partial profile update (optional fields).
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	PhoneNumber *string `json:"phoneNumber"`
}

// EnableTwoFactorRequest stores the phone number and flips the 2FA flag.
type EnableTwoFactorRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// UserResponse user output (no sensitive data).
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Role             string    `json:"role"`
	CompanyID        string    `json:"companyId,omitempty"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
