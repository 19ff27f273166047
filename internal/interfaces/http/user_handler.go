package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
)

// UserHandler handles the authenticated user's own profile.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the user handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// EnableTwoFactor godoc
// @Summary      Enable two-factor authentication
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnableTwoFactorRequest  true  "phoneNumber"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/me/2fa [post]
func (h *UserHandler) EnableTwoFactor(c *fiber.Ctx) error {
	var in dto.EnableTwoFactorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.PhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phoneNumber is required"})
	}
	out, err := h.uc.EnableTwoFactor(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
