package http

import (
	"github.com/gofiber/fiber/v2"
	appdelivery "github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
)

// DeliveryHandler disparo de notificaciones y reportes del historial.
type DeliveryHandler struct {
	notify *appdelivery.NotifyUseCase
	report *appdelivery.ReportUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(notify *appdelivery.NotifyUseCase, report *appdelivery.ReportUseCase) *DeliveryHandler {
	return &DeliveryHandler{notify: notify, report: report}
}

// Notify POST /api/deliveries (porteiro, admin)
func (h *DeliveryHandler) Notify(c *fiber.Ctx) error {
	var in dto.NotifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.notify.Notify(c.Context(), GetBuildingID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Query GET /api/deliveries?start_date=&end_date=&apartment_number=&status= (admin)
func (h *DeliveryHandler) Query(c *fiber.Ctx) error {
	var q dto.DeliveryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.report.Query(GetBuildingID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Stats GET /api/deliveries/stats (admin)
func (h *DeliveryHandler) Stats(c *fiber.Ctx) error {
	var q dto.DeliveryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	stats, err := h.report.Stats(GetBuildingID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// Export GET /api/deliveries/export (admin) — CSV para descarga.
func (h *DeliveryHandler) Export(c *fiber.Ctx) error {
	var q dto.DeliveryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.report.ExportCSV(GetBuildingID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="entregas.csv"`)
	return c.Send(data)
}
