package repository

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
)

// RequestRepository defines the persistence port for FreightRequest (DIP).
type RequestRepository interface {
	Create(ctx context.Context, req *entity.FreightRequest) error
	GetByID(ctx context.Context, id string) (*entity.FreightRequest, error)
	Update(ctx context.Context, req *entity.FreightRequest) error
	Delete(ctx context.Context, id string) error
	// ListActive returns status=active ordered by creation time descending.
	ListActive(ctx context.Context) ([]*entity.FreightRequest, error)
	// ListByUser returns the user's requests in all states, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.FreightRequest, error)
}
