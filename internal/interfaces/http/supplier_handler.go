package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// SupplierHandler listado de proveedores.
type SupplierHandler struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierHandler construye el handler de proveedores.
func NewSupplierHandler(supplierRepo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo}
}

// List godoc
// @Summary      Listar proveedores del tenant
// @Tags         suppliers
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas"
// @Success      200  {array}  dto.SupplierResponse
// @Security     BearerAuth
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	suppliers, err := h.supplierRepo.ListByTenant(GetTenantID(c), page.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando proveedores"})
	}

	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierResponse{
			ID:           s.ID,
			TenantID:     s.TenantID,
			Name:         s.Name,
			ContactEmail: s.ContactEmail,
			CreatedAt:    s.CreatedAt,
		})
	}
	return c.JSON(out)
}
