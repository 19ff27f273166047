package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
)

// companyLookupWorkers bounds the parallel company-name resolution in Browse.
const companyLookupWorkers = 8

// RequestUseCase business rules for the freight request lifecycle.
type RequestUseCase struct {
	requestRepo repository.RequestRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	bus         *event.Bus
	pdf         RequestPDFGenerator
	matcher     *search.Matcher
}

// NewRequestUseCase builds the use case. pdf may be nil when the PDF surface
// is not wired (tests).
func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	bus *event.Bus,
	pdf RequestPDFGenerator,
) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		bus:         bus,
		pdf:         pdf,
		matcher:     search.New(language.Norwegian, search.IgnoreCase),
	}
}

// Create publishes a freight request. The acting user must have a resolvable
// company (ErrNoCompany otherwise) and that company must be approved
// (ErrCompanyNotApproved). Field validation happens before any write. On
// success the record is stored with status=active and the creation event is
// emitted fire-and-forget.
func (uc *RequestUseCase) Create(ctx context.Context, userID string, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if in.CargoType == "" || in.PickupLocation == "" || in.DeliveryLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Weight.IsPositive() || in.NumberOfItems <= 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.resolveCompany(ctx, user)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNoCompany
	}
	if !company.Approved {
		return nil, domain.ErrCompanyNotApproved
	}

	now := time.Now()
	req := &entity.FreightRequest{
		ID:               uuid.New().String(),
		CompanyID:        company.ID,
		UserID:           userID,
		CargoType:        in.CargoType,
		Weight:           in.Weight,
		NumberOfItems:    in.NumberOfItems,
		PickupLocation:   in.PickupLocation,
		DeliveryLocation: in.DeliveryLocation,
		SpecialNeeds:     in.SpecialNeeds,
		Status:           entity.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	uc.bus.Publish(notify.TopicRequestCreated, notify.RequestCreatedEvent{
		Request:     *req,
		CompanyName: company.Name,
	})
	uc.bus.Publish(notify.TopicRequestsChanged, nil)

	out := toRequestResponse(req)
	out.CompanyName = company.Name
	return out, nil
}

// Browse lists active requests newest first, applies the advisory substring
// filters to the snapshot, and resolves company names per distinct company id
// with bounded parallelism. A failed or empty company lookup degrades to an
// empty name; it never fails the listing.
func (uc *RequestUseCase) Browse(ctx context.Context, filter dto.BrowseFilter) (*dto.RequestListResponse, error) {
	list, err := uc.requestRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.FreightRequest, 0, len(list))
	for _, r := range list {
		if uc.matchesFilter(r, filter) {
			filtered = append(filtered, r)
		}
	}

	names := uc.companyNames(ctx, filtered)
	items := make([]dto.RequestResponse, 0, len(filtered))
	for _, r := range filtered {
		out := toRequestResponse(r)
		out.CompanyName = names[r.CompanyID]
		items = append(items, *out)
	}
	return &dto.RequestListResponse{Items: items, Total: len(items)}, nil
}

// Mine lists the caller's requests in all states, newest first.
func (uc *RequestUseCase) Mine(ctx context.Context, userID string) (*dto.RequestListResponse, error) {
	list, err := uc.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequestResponse(r))
	}
	return &dto.RequestListResponse{Items: items, Total: len(items)}, nil
}

// Get returns the detail view. The company or creator record being gone is a
// soft condition: the detail renders without that block.
func (uc *RequestUseCase) Get(ctx context.Context, id string) (*dto.RequestDetailResponse, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	detail := &dto.RequestDetailResponse{RequestResponse: *toRequestResponse(req)}

	if company, err := uc.companyRepo.GetByID(ctx, req.CompanyID); err == nil && company != nil {
		detail.Company = toCompanyResponse(company)
		detail.CompanyName = company.Name
	}
	if creator, err := uc.userRepo.GetByID(ctx, req.UserID); err == nil && creator != nil {
		detail.Contact = &dto.ContactInfo{
			FullName:    creator.FullName,
			Email:       creator.Email,
			PhoneNumber: creator.PhoneNumber,
		}
	}
	return detail, nil
}

// Update applies a partial edit of the mutable fields. Only the owner may
// edit, and only while the request is active; both checks live here rather
// than in the transport layer.
func (uc *RequestUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.UserID != actorID {
		return nil, domain.ErrForbidden
	}
	if req.Status != entity.StatusActive {
		return nil, domain.ErrRequestNotActive
	}
	if in.CargoType != nil {
		if *in.CargoType == "" {
			return nil, domain.ErrInvalidInput
		}
		req.CargoType = *in.CargoType
	}
	if in.Weight != nil {
		if !in.Weight.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		req.Weight = *in.Weight
	}
	if in.NumberOfItems != nil {
		if *in.NumberOfItems <= 0 {
			return nil, domain.ErrInvalidInput
		}
		req.NumberOfItems = *in.NumberOfItems
	}
	if in.PickupLocation != nil {
		if *in.PickupLocation == "" {
			return nil, domain.ErrInvalidInput
		}
		req.PickupLocation = *in.PickupLocation
	}
	if in.DeliveryLocation != nil {
		if *in.DeliveryLocation == "" {
			return nil, domain.ErrInvalidInput
		}
		req.DeliveryLocation = *in.DeliveryLocation
	}
	if in.SpecialNeeds != nil {
		req.SpecialNeeds = *in.SpecialNeeds
	}
	req.UpdatedAt = time.Now()
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	uc.bus.Publish(notify.TopicRequestsChanged, nil)
	return toRequestResponse(req), nil
}

// ChangeStatus moves an active request to completed or cancelled, by the
// owner or a superadmin. Terminal states are frozen (ErrConflict).
func (uc *RequestUseCase) ChangeStatus(ctx context.Context, actorID, actorRole, id, status string) (*dto.RequestResponse, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.UserID != actorID && actorRole != entity.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidStatusTransition(req.Status, status) {
		return nil, domain.ErrConflict
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	uc.bus.Publish(notify.TopicRequestsChanged, nil)
	return toRequestResponse(req), nil
}

// Delete removes the request permanently, from any state, by the owner or a
// superadmin. No tombstone is kept.
func (uc *RequestUseCase) Delete(ctx context.Context, actorID, actorRole, id string) error {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if req.UserID != actorID && actorRole != entity.RoleSuperadmin {
		return domain.ErrForbidden
	}
	if err := uc.requestRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.bus.Publish(notify.TopicRequestsChanged, nil)
	return nil
}

// PDF renders the printable summary for a request.
func (uc *RequestUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotFound
	}
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRequestPDF(ctx, req, company)
}

// matchesFilter applies the advisory browse filters: case-insensitive
// substring on cargo type, and on pickup OR delivery for the location filter.
func (uc *RequestUseCase) matchesFilter(r *entity.FreightRequest, f dto.BrowseFilter) bool {
	if f.CargoType != "" && !uc.contains(r.CargoType, f.CargoType) {
		return false
	}
	if f.Location != "" &&
		!uc.contains(r.PickupLocation, f.Location) &&
		!uc.contains(r.DeliveryLocation, f.Location) {
		return false
	}
	return true
}

func (uc *RequestUseCase) contains(s, substr string) bool {
	start, _ := uc.matcher.IndexString(s, substr)
	return start >= 0
}

// companyNames resolves the name of every distinct company id in the slice,
// at most companyLookupWorkers lookups in flight.
func (uc *RequestUseCase) companyNames(ctx context.Context, list []*entity.FreightRequest) map[string]string {
	ids := make([]string, 0)
	seen := map[string]bool{}
	for _, r := range list {
		if !seen[r.CompanyID] {
			seen[r.CompanyID] = true
			ids = append(ids, r.CompanyID)
		}
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		names = make(map[string]string, len(ids))
		sem   = make(chan struct{}, companyLookupWorkers)
	)
	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(id string) {
			defer wg.Done()
			defer func() { <-sem }()
			company, err := uc.companyRepo.GetByID(ctx, id)
			if err != nil || company == nil {
				return
			}
			mu.Lock()
			names[id] = company.Name
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return names
}

// resolveCompany mirrors the company reconciliation in CompanyUseCase: a
// dangling companyId falls back to the createdBy lookup.
func (uc *RequestUseCase) resolveCompany(ctx context.Context, user *entity.User) (*entity.Company, error) {
	if user.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			return company, nil
		}
	}
	return uc.companyRepo.GetByCreatedBy(ctx, user.ID)
}

func toRequestResponse(r *entity.FreightRequest) *dto.RequestResponse {
	if r == nil {
		return nil
	}
	return &dto.RequestResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		UserID:           r.UserID,
		CargoType:        r.CargoType,
		Weight:           r.Weight,
		NumberOfItems:    r.NumberOfItems,
		PickupLocation:   r.PickupLocation,
		DeliveryLocation: r.DeliveryLocation,
		SpecialNeeds:     r.SpecialNeeds,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
