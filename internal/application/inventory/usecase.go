package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// UseCase alta manual de movimientos en el ledger. El stock nunca se escribe
// directo: registrar un movimiento con signo ES la única forma de cambiarlo,
// y el nivel actual sale de SUM(quantity) en la vista.
type UseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.StockMovementRepository
}

// NewUseCase construye el caso de uso de movimientos.
func NewUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.StockMovementRepository,
) *UseCase {
	return &UseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
	}
}

// RegisterMovement valida y apendea un movimiento. Quantity con signo:
// positivo entrada, negativo salida. Cero es inválido.
func (uc *UseCase) RegisterMovement(ctx context.Context, tenantID, userID string, in dto.RegisterMovementRequest) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.TenantID != tenantID {
		// Producto de otro tenant = inexistente para este: no se filtra su existencia.
		return nil, domain.ErrNotFound
	}

	var warehouseID *string
	if in.WarehouseCode != "" {
		wh, err := uc.warehouseRepo.GetByTenantAndCode(tenantID, in.WarehouseCode)
		if err != nil {
			return nil, err
		}
		warehouseID = &wh.ID
	}

	var movUserID *string
	if userID != "" {
		movUserID = &userID
	}

	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ProductID:   in.ProductID,
		WarehouseID: warehouseID,
		Type:        entity.TypeForQuantity(in.Quantity),
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		Reference:   in.Reference,
		Notes:       in.Notes,
		UserID:      movUserID,
		CreatedAt:   time.Now(),
	}
	if err := uc.movementRepo.Insert(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// History movimientos recientes de un producto, más reciente primero.
func (uc *UseCase) History(ctx context.Context, tenantID, productID string, limit int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	return uc.movementRepo.ListByProduct(tenantID, productID, limit)
}
