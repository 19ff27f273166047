package repository

import (
	"context"
	"time"
)

// WeeklyCounts are the trailing-window creation counters for the digest email.
type WeeklyCounts struct {
	NewRequests  int
	NewCompanies int
	NewUsers     int
}

// PlatformTotals back the admin dashboard.
type PlatformTotals struct {
	Companies        int
	Users            int
	ActiveRequests   int
	PendingCompanies int
}

// StatsRepository is the read-only counting port used by the admin dashboard
// and the weekly digest.
type StatsRepository interface {
	CountsSince(ctx context.Context, since time.Time) (WeeklyCounts, error)
	Totals(ctx context.Context) (PlatformTotals, error)
}
