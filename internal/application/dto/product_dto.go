package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta manual de producto.
type CreateProductRequest struct {
	SKU          string           `json:"sku" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	CategoryName string           `json:"category_name"`
	SupplierName string           `json:"supplier_name"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	ReorderPoint *int             `json:"reorder_point"`
}

// ProductResponse representación de un producto en la API.
type ProductResponse struct {
	ID           string           `json:"id"`
	TenantID     string           `json:"tenant_id"`
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	CategoryID   string           `json:"category_id"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	ReorderPoint *int             `json:"reorder_point,omitempty"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SupplierResponse representación de un proveedor en la API.
type SupplierResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
