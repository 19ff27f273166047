package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// ErrNoCompany: the acting user has no registered company. Callers are
	// directed to complete company registration first.
	ErrNoCompany = errors.New("no company registered")
	// ErrCompanyExists: the user already owns a company (one per user).
	ErrCompanyExists = errors.New("company already registered")
	// ErrCompanyNotApproved: the company exists but awaits admin approval.
	ErrCompanyNotApproved = errors.New("company not approved")
	// ErrRequestNotActive: mutable fields may only change while the request is active.
	ErrRequestNotActive = errors.New("request is not active")
)
