package postgres

import (
	"context"
	"fmt"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// Ensure CompanyRepo implements repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persistence adapter for companies over PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository builds the adapter; db is a pool or a transaction.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, organization_number, contact_email, description,
	approved, created_by, created_at, updated_at`

// Create persists a new company.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, organization_number, contact_email, description, approved, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.OrganizationNumber, company.ContactEmail,
		company.Description, company.Approved, company.CreatedBy,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by id; (nil, nil) when absent.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCreatedBy finds a user's company through the ownership column; the
// reconciliation path for missing back-references.
func (r *CompanyRepo) GetByCreatedBy(ctx context.Context, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE created_by = $1 ORDER BY created_at LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// Update rewrites the mutable company fields.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, organization_number = $3, contact_email = $4,
			description = $5, approved = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.OrganizationNumber, company.ContactEmail,
		company.Description, company.Approved, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListPending returns unapproved companies, newest first.
func (r *CompanyRepo) ListPending(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE approved = false ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.OrganizationNumber, &c.ContactEmail, &c.Description,
			&c.Approved, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete removes a company permanently.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.OrganizationNumber, &c.ContactEmail, &c.Description,
		&c.Approved, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
