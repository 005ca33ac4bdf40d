package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
)

// PlanHandler catálogo de planes (lectura autenticada, edición superadmin).
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List GET /api/plans
func (h *PlanHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Replace PUT /api/plans/:key — reemplazo completo de la entrada del catálogo.
func (h *PlanHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplacePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Replace(c.Params("key"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
