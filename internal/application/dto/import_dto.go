package dto

import "github.com/shopspring/decimal"

// ImportRowDTO fila ya parseada de una hoja de cálculo de inventario.
// El parseo del archivo (CSV/Excel, mapeo de columnas) ocurre fuera del core;
// aquí llega la fila normalizada.
type ImportRowDTO struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	CategoryName string           `json:"category_name"` // vacío -> "General"
	SupplierName string           `json:"supplier_name"` // vacío -> sin proveedor
	Quantity     *int64           `json:"quantity"`      // con signo; nil -> sin movimiento
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
}

// ImportRequest lote de filas a importar.
type ImportRequest struct {
	SourceName string         `json:"source_name"` // nombre del archivo origen, para las notas del ledger
	Rows       []ImportRowDTO `json:"rows"`
}

// ImportSummaryDTO resultado de la importación.
type ImportSummaryDTO struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// RegisterMovementRequest alta manual de un movimiento de stock.
// Quantity es con signo: positivo entrada, negativo salida.
type RegisterMovementRequest struct {
	ProductID     string           `json:"product_id" validate:"required"`
	WarehouseCode string           `json:"warehouse_code"`
	Quantity      int64            `json:"quantity" validate:"required"`
	UnitCost      *decimal.Decimal `json:"unit_cost"`
	Reference     string           `json:"reference"`
	Notes         string           `json:"notes"`
}
