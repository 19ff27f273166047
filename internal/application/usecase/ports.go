package usecase

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// CompanyTxRunner runs fn inside one transaction with company and user repos
// bound to it. Company registration and rejection are two-document writes and
// must commit or roll back together.
type CompanyTxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}

// RequestPDFGenerator renders the printable freight request summary.
type RequestPDFGenerator interface {
	GenerateRequestPDF(ctx context.Context, req *entity.FreightRequest, company *entity.Company) ([]byte, error)
}
