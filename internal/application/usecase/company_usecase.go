package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
)

// CompanyUseCase business rules for the company lifecycle: registration,
// owner edits, admin approval and rejection.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	tx          CompanyTxRunner
	bus         *event.Bus
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository, tx CompanyTxRunner, bus *event.Bus) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, userRepo: userRepo, tx: tx, bus: bus}
}

// Register creates an unapproved company owned by userID and points the user's
// companyId at it, both inside one transaction. Returns ErrCompanyExists when
// the user already owns a company, found either through the back-reference or
// through the createdBy fallback lookup.
func (uc *CompanyUseCase) Register(ctx context.Context, userID string, in dto.RegisterCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.OrganizationNumber == "" || in.ContactEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.resolveOwned(ctx, user)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCompanyExists
	}

	now := time.Now()
	company := &entity.Company{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		OrganizationNumber: in.OrganizationNumber,
		ContactEmail:       in.ContactEmail,
		Description:        in.Description,
		Approved:           false,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = uc.tx.Run(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		txUser, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if txUser == nil {
			return domain.ErrUserNotFound
		}
		txUser.CompanyID = company.ID
		txUser.UpdatedAt = now
		return users.Update(ctx, txUser)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetMine returns the caller's company, reconciling a missing or dangling
// companyId back-reference through the createdBy lookup. When the fallback
// finds the company, the back-reference is restored in place.
// Returns (nil, nil) when the user owns no company.
func (uc *CompanyUseCase) GetMine(ctx context.Context, userID string) (*dto.CompanyResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.resolveOwned(ctx, user)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// GetByID public lookup (browse views show company names).
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// UpdateMine edits the caller's company. Allowed regardless of approval state;
// approval itself is never touched here.
func (uc *CompanyUseCase) UpdateMine(ctx context.Context, userID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.resolveOwned(ctx, user)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNoCompany
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.OrganizationNumber != nil {
		if *in.OrganizationNumber == "" {
			return nil, domain.ErrInvalidInput
		}
		company.OrganizationNumber = *in.OrganizationNumber
	}
	if in.ContactEmail != nil {
		if *in.ContactEmail == "" {
			return nil, domain.ErrInvalidInput
		}
		company.ContactEmail = *in.ContactEmail
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// ListPending returns the admin approval queue, newest first.
func (uc *CompanyUseCase) ListPending(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companyRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Total: len(items)}, nil
}

// Approve flips approved to true and emits the approval event. Approving an
// already-approved company is a no-op: no write, no event, updated_at stays.
func (uc *CompanyUseCase) Approve(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.Approved {
		return toCompanyResponse(company), nil
	}
	company.Approved = true
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	ownerEmail := ""
	if owner, err := uc.userRepo.GetByID(ctx, company.CreatedBy); err == nil && owner != nil {
		ownerEmail = owner.Email
	}
	uc.bus.Publish(notify.TopicCompanyApproved, notify.CompanyApprovedEvent{
		Company:    *company,
		OwnerEmail: ownerEmail,
	})
	return toCompanyResponse(company), nil
}

// Reject permanently deletes the company and clears the owner's companyId
// back-reference in the same transaction. Existing requests keep their
// companyId; readers degrade the missing company to "not found".
func (uc *CompanyUseCase) Reject(ctx context.Context, id string) error {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Delete(ctx, id); err != nil {
			return err
		}
		owner, err := users.GetByID(ctx, company.CreatedBy)
		if err != nil {
			return err
		}
		if owner != nil && owner.CompanyID == id {
			owner.CompanyID = ""
			owner.UpdatedAt = time.Now()
			return users.Update(ctx, owner)
		}
		return nil
	})
}

// resolveOwned finds the company a user owns: back-reference first, then the
// createdBy fallback. A dangling back-reference (company deleted) resolves to
// nil; a missing back-reference with a createdBy hit is healed on the user row.
func (uc *CompanyUseCase) resolveOwned(ctx context.Context, user *entity.User) (*entity.Company, error) {
	if user.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			return company, nil
		}
	}
	company, err := uc.companyRepo.GetByCreatedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if user.CompanyID != company.ID {
		user.CompanyID = company.ID
		user.UpdatedAt = time.Now()
		// Reconciliation write; a failure here only postpones the heal.
		_ = uc.userRepo.Update(ctx, user)
	}
	return company, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		OrganizationNumber: c.OrganizationNumber,
		ContactEmail:       c.ContactEmail,
		Description:        c.Description,
		Approved:           c.Approved,
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
