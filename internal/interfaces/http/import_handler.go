package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/application/importer"
)

// ImportHandler importación masiva de teléfonos y plantilla descargable.
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import POST /api/import/phones (admin) — multipart con campo "file".
// Responde 200 aunque haya filas con error: éxito parcial, el detalle va
// en el cuerpo.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	result, err := h.uc.Import(GetBuildingID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Template GET /api/import/template (admin) — CSV de ejemplo.
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	data, err := h.uc.GenerateTemplate()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="modelo_importacao.csv"`)
	return c.Send(data)
}
