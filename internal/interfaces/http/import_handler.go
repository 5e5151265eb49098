package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/ingest"
)

// ImportHandler ingesta de filas de inventario ya parseadas.
type ImportHandler struct {
	uc *ingest.UseCase
}

// NewImportHandler construye el handler de importación.
func NewImportHandler(uc *ingest.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar filas de inventario (transaccional)
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "filas normalizadas"
// @Success      200   {object}  dto.ImportSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/imports [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rows no puede estar vacío"})
	}

	summary, err := h.uc.Execute(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "la importación falló; ningún cambio fue aplicado"})
	}
	return c.JSON(summary)
}
