package repository

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
// Implementations live in infrastructure. Lookups return (nil, nil) when the
// record does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// ListByRole feeds the notifier fan-outs (sellers, superadmins).
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
}
