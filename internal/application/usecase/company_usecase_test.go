package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fixture
// ──────────────────────────────────────────────────────────────────────────────

type companyFixture struct {
	uc        *usecase.CompanyUseCase
	users     *memUserRepo
	companies *memCompanyRepo
	bus       *event.Bus
}

func newCompanyFixture(t *testing.T) *companyFixture {
	t.Helper()
	users := newMemUserRepo()
	companies := newMemCompanyRepo()
	bus := event.NewBus()
	tx := &memTxRunner{companies: companies, users: users}
	return &companyFixture{
		uc:        usecase.NewCompanyUseCase(companies, users, tx, bus),
		users:     users,
		companies: companies,
		bus:       bus,
	}
}

func (f *companyFixture) seedUser(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.users.Create(context.Background(), &entity.User{
		ID:       id,
		Email:    id + "@example.no",
		FullName: "Per Eier",
		Role:     entity.RoleBuyer,
	}))
}

func validCompanyInput() dto.RegisterCompanyRequest {
	return dto.RegisterCompanyRequest{
		Name:               "Fjord Frakt AS",
		OrganizationNumber: "987654321",
		ContactEmail:       "post@fjordfrakt.no",
		Description:        "Frakt langs kysten",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyRegister_CreatesPendingCompanyAndBackReference(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")

	out, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	assert.False(t, out.Approved, "a new company must await approval")
	assert.Equal(t, "owner-1", out.CreatedBy)

	owner, err := f.users.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, out.ID, owner.CompanyID, "owner must be bound to the new company")
}

func TestCompanyRegister_SecondCompany_Rejected(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")

	_, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	assert.ErrorIs(t, err, domain.ErrCompanyExists)
}

// Even without the back-reference, the createdBy lookup blocks a duplicate.
func TestCompanyRegister_DuplicateDetectedThroughCreatedBy(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	require.NoError(t, f.companies.Create(context.Background(), &entity.Company{
		ID: "existing", Name: "Gammel AS", CreatedBy: "owner-1", CreatedAt: time.Now(),
	}))

	_, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	assert.ErrorIs(t, err, domain.ErrCompanyExists)
}

func TestCompanyRegister_MissingFields_Rejected(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")

	in := validCompanyInput()
	in.OrganizationNumber = ""
	_, err := f.uc.Register(context.Background(), "owner-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetMine and the back-reference heal
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGetMine_NoCompany_ReturnsNil(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")

	out, err := f.uc.GetMine(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// A user whose companyId was never written still finds the company through
// createdBy, and the back-reference is restored as a side effect.
func TestCompanyGetMine_HealsMissingBackReference(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	require.NoError(t, f.companies.Create(context.Background(), &entity.Company{
		ID: "c-1", Name: "Fjord Frakt AS", CreatedBy: "owner-1", CreatedAt: time.Now(),
	}))

	out, err := f.uc.GetMine(context.Background(), "owner-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "c-1", out.ID)

	owner, err := f.users.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", owner.CompanyID, "back-reference must be healed")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateMine
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyUpdateMine_PartialEdit(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	_, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	name := "Fjord Frakt Norge AS"
	out, err := f.uc.UpdateMine(context.Background(), "owner-1", dto.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Fjord Frakt Norge AS", out.Name)
	assert.Equal(t, "987654321", out.OrganizationNumber, "untouched fields must survive")
	assert.False(t, out.Approved, "editing must not change approval")
}

func TestCompanyUpdateMine_WithoutCompany_Rejected(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")

	name := "Navn"
	_, err := f.uc.UpdateMine(context.Background(), "owner-1", dto.UpdateCompanyRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNoCompany)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyApprove_FlipsFlagAndEmitsEvent(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	created, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	events := make(chan notify.CompanyApprovedEvent, 1)
	unsubscribe := f.bus.Subscribe(notify.TopicCompanyApproved, func(payload interface{}) {
		if ev, ok := payload.(notify.CompanyApprovedEvent); ok {
			events <- ev
		}
	})
	defer unsubscribe()

	out, err := f.uc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, out.Approved)

	select {
	case ev := <-events:
		assert.Equal(t, created.ID, ev.Company.ID)
		assert.Equal(t, "owner-1@example.no", ev.OwnerEmail)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an approval event")
	}

	pending, err := f.uc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Total, "approved company must leave the queue")
}

func TestCompanyApprove_AlreadyApproved_IsNoOp(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	created, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	first, err := f.uc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	events := make(chan notify.CompanyApprovedEvent, 1)
	unsubscribe := f.bus.Subscribe(notify.TopicCompanyApproved, func(payload interface{}) {
		if ev, ok := payload.(notify.CompanyApprovedEvent); ok {
			events <- ev
		}
	})
	defer unsubscribe()

	second, err := f.uc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, second.Approved)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt, "re-approval must not touch the record")

	select {
	case <-events:
		t.Fatal("re-approval must not emit a second event")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCompanyApprove_Unknown_ReturnsNotFound(t *testing.T) {
	f := newCompanyFixture(t)
	_, err := f.uc.Approve(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reject
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyReject_DeletesCompanyAndClearsBackReference(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1")
	created, err := f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	require.NoError(t, err)

	require.NoError(t, f.uc.Reject(context.Background(), created.ID))

	gone, err := f.companies.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "rejected company must be removed")

	owner, err := f.users.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, owner.CompanyID, "owner binding must be cleared")

	pending, err := f.uc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Total)

	// The owner can register again afterwards.
	_, err = f.uc.Register(context.Background(), "owner-1", validCompanyInput())
	assert.NoError(t, err)
}

func TestCompanyReject_Unknown_ReturnsNotFound(t *testing.T) {
	f := newCompanyFixture(t)
	err := f.uc.Reject(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
