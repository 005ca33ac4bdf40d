package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
)

// BuildingHandler gestión de edificios (superadmin) y del edificio propio (admin).
type BuildingHandler struct {
	uc *usecase.BuildingUseCase
}

// NewBuildingHandler construye el handler.
func NewBuildingHandler(uc *usecase.BuildingUseCase) *BuildingHandler {
	return &BuildingHandler{uc: uc}
}

// Create POST /api/buildings (superadmin)
func (h *BuildingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBuildingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	b, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// List GET /api/buildings?limit=20&offset=0 (superadmin)
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetMine GET /api/buildings/me (admin) — el edificio del token.
func (h *BuildingHandler) GetMine(c *fiber.Ctx) error {
	b, err := h.uc.GetByID(GetBuildingID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// UpdateMine PATCH /api/buildings/me (admin) — dirección, mensaje, plan, activo.
func (h *BuildingHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.UpdateBuildingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	b, err := h.uc.Update(GetBuildingID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// GetByID GET /api/buildings/:id (superadmin)
func (h *BuildingHandler) GetByID(c *fiber.Ctx) error {
	b, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// Update PATCH /api/buildings/:id (superadmin) — cualquier edificio.
func (h *BuildingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBuildingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	b, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// Delete DELETE /api/buildings/:id (superadmin) — cascada irreversible.
func (h *BuildingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PublicLookup GET /api/public/buildings/:code — expone solo id y nombre.
func (h *BuildingHandler) PublicLookup(c *fiber.Ctx) error {
	b, err := h.uc.FindByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}
