package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgm-logistikk/frakt-api/internal/application/auth"
	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	pkgjwt "github.com/dgm-logistikk/frakt-api/pkg/jwt"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) ListByRole(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "frakt-api-test"}
}

func validRegisterInput() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "kari@example.no",
		Password: "hemmelig-passord",
		FullName: "Kari Kjøper",
		Role:     entity.RoleBuyer,
	}
}

func TestRegister_CreatesUserAndReturnsToken(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	out, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.NotEmpty(t, out.User.ID)
	assert.Equal(t, "kari@example.no", out.User.Email)
	assert.Equal(t, entity.RoleBuyer, out.User.Role)
	assert.False(t, out.User.TwoFactorEnabled)

	userID, _, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err, "returned token must be valid")
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleBuyer, role)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "hemmelig-passord", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_DuplicateEmail_Rejected(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

type failingEmailLookupRepo struct {
	*memUserRepo
}

func (r *failingEmailLookupRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("connection reset")
}

func TestRegister_EmailLookupError_Propagated(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(&failingEmailLookupRepo{repo}, testJWTConfig())

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.Error(t, err, "a store failure must not read as the email being free")
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Empty(t, repo.users, "no account may be created when the lookup fails")
}

func TestRegister_SuperadminRole_Rejected(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	in := validRegisterInput()
	in.Role = entity.RoleSuperadmin
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"superadmin must not be self-assignable")
}

func TestRegister_UnknownRole_Rejected(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	in := validRegisterInput()
	in.Role = "carrier"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_MissingFields_Rejected(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	in := validRegisterInput()
	in.FullName = ""
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ValidCredentials(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "kari@example.no",
		Password: "hemmelig-passord",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "kari@example.no", out.User.Email)
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "kari@example.no",
		Password: "feil-passord",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ingen@example.no",
		Password: "uansett",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
