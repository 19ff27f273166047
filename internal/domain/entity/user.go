package entity

import "time"

// Valid roles for User. The set is closed: no operation changes a role after
// registration, and superadmins are seeded out-of-band.
const (
	RoleBuyer      = "buyer"
	RoleSeller     = "seller"
	RoleSuperadmin = "superadmin"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleSeller, RoleSuperadmin:
		return true
	}
	return false
}

// User represents a platform account. CompanyID is empty until the user
// registers a company; a dangling CompanyID (company deleted) must be treated
// as "no company" by consuming code.
type User struct {
	ID               string
	Email            string
	PasswordHash     string // bcrypt hash, never plaintext after persisting
	FullName         string
	Role             string // buyer, seller, superadmin
	CompanyID        string // "" = none
	PhoneNumber      string
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
