package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
)

// CompanyHandler handles company registration and self-service.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the company handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Register godoc
// @Summary      Register a company (pending admin approval)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "company data"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/companies [post]
func (h *CompanyHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      Company owned by the current user
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/companies/mine [get]
func (h *CompanyHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no company registered"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Company by id
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company not found"})
	}
	return c.JSON(out)
}

// UpdateMine godoc
// @Summary      Update own company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "fields to change"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/companies/mine [put]
func (h *CompanyHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateMine(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
