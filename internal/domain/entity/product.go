package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU único por tenant).
// UnitPrice y CostPrice son punteros: en importaciones reales suelen faltar
// y los cálculos de margen deben distinguir "sin dato" de cero.
// El stock nunca se guarda aquí: se deriva del ledger de movimientos.
type Product struct {
	ID           string
	TenantID     string
	SKU          string
	Name         string
	Description  string
	CategoryID   string  // obligatorio: la ingesta crea "General" si falta
	SupplierID   *string // opcional
	UnitPrice    *decimal.Decimal
	CostPrice    *decimal.Decimal
	ReorderPoint *int
	ReorderQty   *int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
