package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
)

// ApartmentHandler apartamentos y teléfonos del edificio del token.
type ApartmentHandler struct {
	uc *usecase.ApartmentUseCase
}

// NewApartmentHandler construye el handler.
func NewApartmentHandler(uc *usecase.ApartmentUseCase) *ApartmentHandler {
	return &ApartmentHandler{uc: uc}
}

// List GET /api/apartments (admin, porteiro) — con teléfonos embebidos.
func (h *ApartmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListWithPhones(GetBuildingID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/apartments (admin)
func (h *ApartmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	a, err := h.uc.Create(GetBuildingID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Rename PATCH /api/apartments/:id (admin)
func (h *ApartmentHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameApartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Rename(GetBuildingID(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPhone POST /api/apartments/:id/phones (admin)
func (h *ApartmentHandler) AddPhone(c *fiber.Ctx) error {
	var in dto.AddPhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.AddPhone(GetBuildingID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// DeletePhone DELETE /api/phones/:id (admin) — idempotente.
func (h *ApartmentHandler) DeletePhone(c *fiber.Ctx) error {
	if err := h.uc.DeletePhone(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPhones GET /api/phones (admin) — listado plano consolidado.
func (h *ApartmentHandler) ListPhones(c *fiber.Ctx) error {
	list, err := h.uc.ListAllPhones(GetBuildingID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PublicAddPhone POST /api/public/buildings/:code/phones — auto-registro de
// residente vía código del edificio, sin cuenta.
func (h *ApartmentHandler) PublicAddPhone(c *fiber.Ctx) error {
	var in dto.PublicAddPhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.AddPhoneByCode(c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}
