package repository

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
)

// CompanyRepository defines the persistence port for Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByCreatedBy is the reconciliation lookup for users whose company_id
	// back-reference is missing or stale.
	GetByCreatedBy(ctx context.Context, userID string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// ListPending returns unapproved companies, newest first (admin queue).
	ListPending(ctx context.Context) ([]*entity.Company, error)
	Delete(ctx context.Context, id string) error
}
