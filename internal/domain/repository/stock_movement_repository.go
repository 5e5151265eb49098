package repository

import (
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// StockMovementRepository puerto del ledger de movimientos. Solo inserta:
// el ledger es append-only y nunca se actualiza ni borra.
type StockMovementRepository interface {
	Insert(movement *entity.StockMovement) error
	ListByProduct(tenantID, productID string, limit int) ([]*entity.StockMovement, error)
}
