package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento. Descriptivos: el signo de Quantity es la fuente de verdad.
const (
	MovementTypeIn     = "in"
	MovementTypeOut    = "out"
	MovementTypeAdjust = "adjust"
)

// StockMovement entrada del ledger de inventario. Append-only: una vez
// insertado nunca se modifica. Quantity es SIEMPRE con signo (positivo =
// entrada, negativo = salida); el stock actual de un producto es
// SUM(quantity) sobre sus movimientos.
type StockMovement struct {
	ID          string
	TenantID    string
	ProductID   string
	WarehouseID *string
	Type        string // in, out, adjust
	Quantity    int64  // con signo
	UnitCost    *decimal.Decimal
	Reference   string
	Notes       string
	UserID      *string
	CreatedAt   time.Time
}

// TypeForQuantity deriva el tipo descriptivo a partir del signo.
func TypeForQuantity(qty int64) string {
	if qty < 0 {
		return MovementTypeOut
	}
	return MovementTypeIn
}
