package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/workflow"
)

// WorkflowHandler expone el ciclo de eliminación/restauración sobre las
// entidades del catálogo y las ventas. El tipo objetivo lo fija la ruta.
type WorkflowHandler struct {
	uc *workflow.UseCase
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(uc *workflow.UseCase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

// RequestDeletion handler de POST /:id/request-deletion para targetType.
func (h *WorkflowHandler) RequestDeletion(targetType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.RequestDeletion(c.Context(), GetActor(c), targetType, c.Params("id"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// RequestRestoration handler de POST /:id/request-restoration para targetType.
func (h *WorkflowHandler) RequestRestoration(targetType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.RequestRestoration(c.Context(), GetActor(c), targetType, c.Params("id"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// Delete handler de DELETE /:id (eliminación directa) para targetType.
func (h *WorkflowHandler) Delete(targetType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.uc.DeleteDirect(c.Context(), GetActor(c), targetType, c.Params("id")); err != nil {
			return errorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ValidationHandler consulta y resolución de solicitudes (solo admin).
type ValidationHandler struct {
	uc *workflow.UseCase
}

// NewValidationHandler construye el handler.
func NewValidationHandler(uc *workflow.UseCase) *ValidationHandler {
	return &ValidationHandler{uc: uc}
}

// List godoc
// @Summary      Listar solicitudes de validación
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | approved | rejected"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ValidationListResponse
// @Router       /api/validations [get]
func (h *ValidationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("status"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una solicitud pendiente
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ValidationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/validations/{id}/approve [post]
func (h *ValidationHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Context(), GetActor(c), c.Params("id"), workflow.DecisionApprove)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar una solicitud pendiente
// @Tags         validations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ValidationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/validations/{id}/reject [post]
func (h *ValidationHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Context(), GetActor(c), c.Params("id"), workflow.DecisionReject)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
