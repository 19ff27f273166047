package usecase

import (
	"context"
	"time"

	"github.com/dgm-logistikk/frakt-api/internal/application/auth"
	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// UserUseCase profile reads and edits. Role is deliberately not editable.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Me returns the caller's own record.
func (uc *UserUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile applies a partial edit of full name and phone number.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, domain.ErrInvalidInput
		}
		user.FullName = *in.FullName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// EnableTwoFactor stores the phone number and flips the 2FA flag. The SMS
// challenge itself is handled by the identity provider; the stored flag is
// the platform's contract.
func (uc *UserUseCase) EnableTwoFactor(ctx context.Context, userID string, in dto.EnableTwoFactorRequest) (*dto.UserResponse, error) {
	if in.PhoneNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.PhoneNumber = in.PhoneNumber
	user.TwoFactorEnabled = true
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
