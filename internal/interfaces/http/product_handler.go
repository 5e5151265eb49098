package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// ProductHandler listado y consulta de productos con su stock calculado.
// Lee de la vista agregada: el nivel de stock nunca sale de la tabla products.
type ProductHandler struct {
	view        repository.StockViewRepository
	productRepo repository.ProductRepository
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(view repository.StockViewRepository, productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{view: view, productRepo: productRepo}
}

// stockRowResponse fila de la vista en la API.
type stockRowResponse struct {
	Product      dto.ProductResponse `json:"product"`
	CategoryName string              `json:"category_name"`
	SupplierName *string             `json:"supplier_name,omitempty"`
	StockLevel   int64               `json:"stock_level"`
}

// stockListResponse página de filas de la vista.
type stockListResponse struct {
	Items []stockRowResponse `json:"items"`
	Page  dto.PageResponse   `json:"page"`
}

// List godoc
// @Summary      Listar productos con stock calculado
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "filtro por nombre de categoría"
// @Param        supplier  query  string  false  "filtro por nombre de proveedor"
// @Param        limit     query  int     false  "máximo de filas"
// @Param        offset    query  int     false  "desplazamiento de página"
// @Success      200  {object}  stockListResponse
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	rows, err := h.view.ListStock(c.UserContext(), GetTenantID(c), repository.StockFilter{
		Category: c.Query("category"),
		Supplier: c.Query("supplier"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando productos"})
	}

	out := stockListResponse{
		Items: make([]stockRowResponse, 0, len(rows)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, row := range rows {
		out.Items = append(out.Items, stockRowResponse{
			Product:      toProductResponse(&row.Product),
			CategoryName: row.CategoryName,
			SupplierName: row.SupplierName,
			StockLevel:   row.StockLevel,
		})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.productRepo.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando el producto"})
	}
	if product.TenantID != GetTenantID(c) {
		// Producto de otro tenant: para este usuario no existe.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(toProductResponse(product))
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		TenantID:     p.TenantID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		UnitPrice:    p.UnitPrice,
		CostPrice:    p.CostPrice,
		ReorderPoint: p.ReorderPoint,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
