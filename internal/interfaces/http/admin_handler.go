package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
)

// AdminHandler handles the superadmin approval queue and dashboard stats.
type AdminHandler struct {
	companies *usecase.CompanyUseCase
	stats     *usecase.StatsUseCase
}

// NewAdminHandler builds the admin handler.
func NewAdminHandler(companies *usecase.CompanyUseCase, stats *usecase.StatsUseCase) *AdminHandler {
	return &AdminHandler{companies: companies, stats: stats}
}

// PendingCompanies godoc
// @Summary      Companies awaiting approval
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/companies/pending [get]
func (h *AdminHandler) PendingCompanies(c *fiber.Ctx) error {
	out, err := h.companies.ListPending(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ApproveCompany godoc
// @Summary      Approve a company
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/companies/{id}/approve [post]
func (h *AdminHandler) ApproveCompany(c *fiber.Ctx) error {
	out, err := h.companies.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RejectCompany godoc
// @Summary      Reject and remove a company
// @Tags         admin
// @Param        id  path  string  true  "company id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/companies/{id} [delete]
func (h *AdminHandler) RejectCompany(c *fiber.Ctx) error {
	if err := h.companies.Reject(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Platform totals for the admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.AdminStats(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
