package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/dto"
	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
)

// RequestHandler handles freight request publishing, browsing and lifecycle.
type RequestHandler struct {
	uc  *usecase.RequestUseCase
	bus *event.Bus
}

// NewRequestHandler builds the request handler.
func NewRequestHandler(uc *usecase.RequestUseCase, bus *event.Bus) *RequestHandler {
	return &RequestHandler{uc: uc, bus: bus}
}

// Create godoc
// @Summary      Publish a freight request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequestRequest  true  "freight request"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Browse godoc
// @Summary      Browse active freight requests
// @Tags         requests
// @Produce      json
// @Param        cargoType  query     string  false  "cargo type substring"
// @Param        location   query     string  false  "pickup or delivery substring"
// @Success      200        {object}  dto.RequestListResponse
// @Security     BearerAuth
// @Router       /api/requests [get]
func (h *RequestHandler) Browse(c *fiber.Ctx) error {
	var filter dto.BrowseFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	out, err := h.uc.Browse(c.Context(), filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Watch godoc
// @Summary      Live browse stream (Server-Sent Events)
// @Description  Emits a full snapshot of active requests on connect and again
// @Description  whenever requests change. Heartbeat comments keep the
// @Description  connection open through proxies.
// @Tags         requests
// @Produce      text/event-stream
// @Param        cargoType  query  string  false  "cargo type substring"
// @Param        location   query  string  false  "pickup or delivery substring"
// @Security     BearerAuth
// @Router       /api/requests/watch [get]
func (h *RequestHandler) Watch(c *fiber.Ctx) error {
	var filter dto.BrowseFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	changed := make(chan struct{}, 1)
	unsubscribe := h.bus.Subscribe(notify.TopicRequestsChanged, func(interface{}) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		// The fiber ctx is gone once streaming starts; snapshots get their
		// own deadline instead.
		if !h.writeSnapshot(w, filter) {
			return
		}

		heartbeat := time.NewTicker(25 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case <-changed:
				if !h.writeSnapshot(w, filter) {
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

// writeSnapshot sends one full browse result as an SSE event. Returns false
// when the client is gone.
func (h *RequestHandler) writeSnapshot(w *bufio.Writer, filter dto.BrowseFilter) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := h.uc.Browse(ctx, filter)
	if err != nil {
		return true // transient failure, keep the stream alive
	}
	data, err := json.Marshal(out)
	if err != nil {
		return true
	}
	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data); err != nil {
		return false
	}
	return w.Flush() == nil
}

// Mine godoc
// @Summary      Freight requests created by the current user
// @Tags         requests
// @Produce      json
// @Success      200  {object}  dto.RequestListResponse
// @Security     BearerAuth
// @Router       /api/requests/mine [get]
func (h *RequestHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Freight request detail
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "request id"
// @Success      200  {object}  dto.RequestDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Printable freight request summary
// @Tags         requests
// @Produce      application/pdf
// @Param        id   path  string  true  "request id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests/{id}/pdf [get]
func (h *RequestHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=fraktforesporsel-%s.pdf", c.Params("id")))
	return c.Send(data)
}

// Update godoc
// @Summary      Edit an active freight request (owner only)
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "request id"
// @Param        body  body  dto.UpdateRequestRequest  true  "fields to change"
// @Success      200   {object}  dto.RequestResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests/{id} [put]
func (h *RequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Complete or cancel a freight request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "request id"
// @Param        body  body  dto.ChangeStatusRequest  true  "completed or cancelled"
// @Success      200   {object}  dto.RequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests/{id}/status [post]
func (h *RequestHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status is required"})
	}
	out, err := h.uc.ChangeStatus(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a freight request (owner or admin)
// @Tags         requests
// @Param        id  path  string  true  "request id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requests/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
