package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only counting queries for the admin dashboard and the
// weekly digest.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountsSince counts records created at or after the cutoff, per collection.
func (r *StatsRepo) CountsSince(ctx context.Context, since time.Time) (repository.WeeklyCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM requests  WHERE created_at >= $1),
			(SELECT COUNT(*) FROM companies WHERE created_at >= $1),
			(SELECT COUNT(*) FROM users     WHERE created_at >= $1)`
	var c repository.WeeklyCounts
	if err := r.pool.QueryRow(ctx, query, since).Scan(&c.NewRequests, &c.NewCompanies, &c.NewUsers); err != nil {
		return repository.WeeklyCounts{}, fmt.Errorf("stats.CountsSince: %w", err)
	}
	return c, nil
}

// Totals returns platform-wide counters.
func (r *StatsRepo) Totals(ctx context.Context) (repository.PlatformTotals, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM requests  WHERE status = $1),
			(SELECT COUNT(*) FROM companies WHERE approved = false)`
	var t repository.PlatformTotals
	if err := r.pool.QueryRow(ctx, query, entity.StatusActive).Scan(
		&t.Companies, &t.Users, &t.ActiveRequests, &t.PendingCompanies,
	); err != nil {
		return repository.PlatformTotals{}, fmt.Errorf("stats.Totals: %w", err)
	}
	return t, nil
}
