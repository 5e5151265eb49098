package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// StockRow fila de la vista de stock agregado: producto + nombre de categoría
// + nombre de proveedor (si tiene) + nivel de stock calculado.
// El nivel de stock es SUM(quantity) del ledger, 0 si no hay movimientos; esta
// vista es la única fuente de verdad del stock en todo el sistema.
type StockRow struct {
	Product      entity.Product
	CategoryName string
	SupplierName *string
	StockLevel   int64
}

// Campos de ordenamiento soportados por la vista.
const (
	SortByPrice = "price"
	SortByStock = "quantity"
)

// Direcciones de ordenamiento.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Modos de coincidencia por nombre de producto (búsqueda escalonada).
const (
	MatchExact    = "exact"
	MatchPrefix   = "prefix"
	MatchContains = "contains"
)

// StockFilter filtros componibles sobre la vista. Valores vacíos = sin filtro.
// Las coincidencias de texto son case-insensitive (ILIKE en el adaptador).
type StockFilter struct {
	Category  string // substring sobre el nombre de la categoría
	Supplier  string // substring sobre el nombre del proveedor
	Name      string // término de búsqueda sobre el nombre del producto
	NameMode  string // exact | prefix | contains (solo si Name != "")
	SortField string // price | quantity
	SortOrder string // ASC | DESC
	Limit     int    // 0 = sin límite
	Offset    int    // 0 = desde el inicio
}

// CategoryCount productos por categoría (solo categorías con al menos un producto).
type CategoryCount struct {
	Name  string
	Count int
}

// SupplierCount productos por proveedor.
type SupplierCount struct {
	Name  string
	Count int
}

// StockViewRepository puerto de solo lectura sobre la vista de stock agregado.
// Función pura de (tenant, filtros) a filas: sin estado compartido entre llamadas.
// Toda operación filtra por tenant; ninguna escribe.
type StockViewRepository interface {
	// ListStock devuelve filas de la vista con filtros, orden y límite aplicados
	// en la capa de datos.
	ListStock(ctx context.Context, tenantID string, f StockFilter) ([]StockRow, error)

	// CountProducts total de productos del tenant.
	CountProducts(ctx context.Context, tenantID string) (int, error)

	// CountProductsByCategory conteo agrupado por categoría (INNER JOIN: las
	// categorías sin productos no aparecen). Orden determinista por nombre.
	CountProductsByCategory(ctx context.Context, tenantID string) ([]CategoryCount, error)

	// ListCostedProducts productos con UnitPrice Y CostPrice definidos (análisis de margen).
	ListCostedProducts(ctx context.Context, tenantID string) ([]entity.Product, error)

	// ListSuppliers proveedores del tenant, opcionalmente restringidos a los que
	// tienen al menos un producto en una categoría cuyo nombre contiene el filtro.
	// Sin duplicados.
	ListSuppliers(ctx context.Context, tenantID, categoryFilter string, limit int) ([]entity.Supplier, error)

	// TopSuppliersByProductCount proveedores con más productos, descendente.
	TopSuppliersByProductCount(ctx context.Context, tenantID string, limit int) ([]SupplierCount, error)

	// ListPrices precios unitarios no nulos del tenant (distribución de precios).
	ListPrices(ctx context.Context, tenantID string) ([]decimal.Decimal, error)
}
