package usecase

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// StatsUseCase read-only aggregates for the admin dashboard.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// AdminStats returns platform totals.
func (uc *StatsUseCase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totals, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatsResponse{
		Companies:        totals.Companies,
		Users:            totals.Users,
		ActiveRequests:   totals.ActiveRequests,
		PendingCompanies: totals.PendingCompanies,
	}, nil
}
