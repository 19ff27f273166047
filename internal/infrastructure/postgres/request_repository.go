package postgres

import (
	"context"
	"fmt"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// Ensure RequestRepo implements repository.RequestRepository.
var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo persistence adapter for freight requests over PostgreSQL.
// weight is a NUMERIC column scanned into shopspring decimal via the pool's
// registered codec.
type RequestRepo struct {
	db DB
}

// NewRequestRepository builds the adapter; db is a pool or a transaction.
func NewRequestRepository(db DB) *RequestRepo {
	return &RequestRepo{db: db}
}

const requestColumns = `id, company_id, user_id, cargo_type, weight, number_of_items,
	pickup_location, delivery_location, COALESCE(special_needs, ''), status,
	created_at, updated_at`

// Create persists a new freight request.
func (r *RequestRepo) Create(ctx context.Context, req *entity.FreightRequest) error {
	query := `
		INSERT INTO requests (id, company_id, user_id, cargo_type, weight, number_of_items,
			pickup_location, delivery_location, special_needs, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.CompanyID, req.UserID, req.CargoType, req.Weight, req.NumberOfItems,
		req.PickupLocation, req.DeliveryLocation, req.SpecialNeeds, req.Status,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID fetches a request by id; (nil, nil) when absent.
func (r *RequestRepo) GetByID(ctx context.Context, id string) (*entity.FreightRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	var req entity.FreightRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.CompanyID, &req.UserID, &req.CargoType, &req.Weight, &req.NumberOfItems,
		&req.PickupLocation, &req.DeliveryLocation, &req.SpecialNeeds, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// Update rewrites the mutable fields plus status.
func (r *RequestRepo) Update(ctx context.Context, req *entity.FreightRequest) error {
	query := `
		UPDATE requests SET cargo_type = $2, weight = $3, number_of_items = $4,
			pickup_location = $5, delivery_location = $6, special_needs = NULLIF($7, ''),
			status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.CargoType, req.Weight, req.NumberOfItems,
		req.PickupLocation, req.DeliveryLocation, req.SpecialNeeds,
		req.Status, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// Delete removes a request permanently.
func (r *RequestRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

// ListActive returns active requests, newest first.
func (r *RequestRepo) ListActive(ctx context.Context) ([]*entity.FreightRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, entity.StatusActive)
}

// ListByUser returns the user's requests in all states, newest first.
func (r *RequestRepo) ListByUser(ctx context.Context, userID string) ([]*entity.FreightRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *RequestRepo) list(ctx context.Context, query string, arg any) ([]*entity.FreightRequest, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.FreightRequest
	for rows.Next() {
		var req entity.FreightRequest
		if err := rows.Scan(
			&req.ID, &req.CompanyID, &req.UserID, &req.CargoType, &req.Weight, &req.NumberOfItems,
			&req.PickupLocation, &req.DeliveryLocation, &req.SpecialNeeds, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
