package postgres

import (
	"context"
	"fmt"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// Ensure UserRepo implements repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo persistence adapter for users over PostgreSQL.
// company_id and phone_number are nullable in the schema; the adapter maps
// NULL to the empty string both ways.
type UserRepo struct {
	db DB
}

// NewUserRepository builds the adapter; db is a pool or a transaction.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password_hash, full_name, role,
	COALESCE(company_id, ''), COALESCE(phone_number, ''), two_factor_enabled,
	created_at, updated_at`

// Create persists a new user.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, company_id, phone_number, two_factor_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.CompanyID, user.PhoneNumber, user.TwoFactorEnabled,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id; (nil, nil) when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail fetches a user by email; (nil, nil) when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(ctx, query, email)
}

// Update rewrites the mutable user fields.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET email = $2, full_name = $3, company_id = NULLIF($4, ''),
			phone_number = NULLIF($5, ''), two_factor_enabled = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.FullName, user.CompanyID,
		user.PhoneNumber, user.TwoFactorEnabled, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByRole returns all users with the given role.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
			&u.CompanyID, &u.PhoneNumber, &u.TwoFactorEnabled,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.CompanyID, &u.PhoneNumber, &u.TwoFactorEnabled,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
