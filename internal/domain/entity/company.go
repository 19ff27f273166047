package entity

import "time"

// Company represents a registered firm. It is created unapproved by a buyer or
// seller and only an admin action flips Approved to true. Approval gates
// whether the owning user may publish freight requests.
type Company struct {
	ID                 string
	Name               string
	OrganizationNumber string
	ContactEmail       string
	Description        string
	Approved           bool
	CreatedBy          string // owning user id
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
