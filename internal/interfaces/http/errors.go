package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/domain"
)

// domainError maps a domain sentinel to the HTTP status and error code the
// API contract promises. Handlers call it after their own specific checks.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not allowed"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email is already registered"})
	case errors.Is(err, domain.ErrCompanyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMPANY_EXISTS", Message: "user already has a registered company"})
	case errors.Is(err, domain.ErrRequestNotActive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REQUEST_NOT_ACTIVE", Message: "only active requests can be edited"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNoCompany):
		return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "a registered company is required"})
	case errors.Is(err, domain.ErrCompanyNotApproved):
		return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_APPROVED", Message: "company is awaiting admin approval"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
