package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

// UseCase ingesta de filas de inventario ya parseadas. Reglas:
//   - fila sin categoría -> se asegura la categoría "General";
//   - proveedor y categoría se crean solo si no existen (por nombre, por tenant);
//   - un SKU existente NUNCA se sobreescribe a ciegas: solo se completan los
//     campos que la fila trae;
//   - la cantidad genera un movimiento con signo en el ledger, nunca un
//     UPDATE de stock.
type UseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewUseCase construye el caso de uso de ingesta.
func NewUseCase(tx TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, log: log}
}

// Execute importa un lote de filas dentro de una sola transacción.
// Las filas inválidas se saltan y se reportan en el resumen; no abortan el lote.
func (uc *UseCase) Execute(ctx context.Context, tenantID string, req dto.ImportRequest) (*dto.ImportSummaryDTO, error) {
	summary := &dto.ImportSummaryDTO{}
	source := req.SourceName
	if source == "" {
		source = "import"
	}

	err := uc.tx.WithinTx(ctx, func(r Repos) error {
		for i, row := range req.Rows {
			summary.Processed++
			if err := uc.importRow(tenantID, source, row, r, summary); err != nil {
				summary.Skipped++
				summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d (%s): %v", i+1, row.SKU, err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("tenant_id", tenantID).
		Str("source", source).
		Int("processed", summary.Processed).
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Msg("importación completada")
	return summary, nil
}

func (uc *UseCase) importRow(tenantID, source string, row dto.ImportRowDTO, r Repos, summary *dto.ImportSummaryDTO) error {
	sku := strings.TrimSpace(row.SKU)
	name := strings.TrimSpace(row.Name)
	if sku == "" || name == "" {
		return domain.ErrInvalidInput
	}

	category, err := uc.ensureCategory(tenantID, row.CategoryName, r)
	if err != nil {
		return err
	}

	var supplierID *string
	if s := strings.TrimSpace(row.SupplierName); s != "" {
		supplier, err := uc.ensureSupplier(tenantID, s, r)
		if err != nil {
			return err
		}
		supplierID = &supplier.ID
	}

	product, err := r.Products.GetByTenantAndSKU(tenantID, sku)
	switch {
	case err == nil:
		// Existente: completar sin pisar datos que la fila no trae.
		changed := false
		if product.Name != name {
			product.Name = name
			changed = true
		}
		if row.UnitPrice != nil {
			product.UnitPrice = row.UnitPrice
			changed = true
		}
		if row.CostPrice != nil {
			product.CostPrice = row.CostPrice
			changed = true
		}
		if supplierID != nil {
			product.SupplierID = supplierID
			changed = true
		}
		if changed {
			if err := r.Products.Update(product); err != nil {
				return err
			}
			summary.Updated++
		}
	case err == domain.ErrNotFound:
		product = &entity.Product{
			ID:         uuid.NewString(),
			TenantID:   tenantID,
			SKU:        sku,
			Name:       name,
			CategoryID: category.ID,
			SupplierID: supplierID,
			UnitPrice:  row.UnitPrice,
			CostPrice:  row.CostPrice,
			IsActive:   true,
		}
		if err := r.Products.Create(product); err != nil {
			return err
		}
		summary.Created++
	default:
		return err
	}

	if row.Quantity != nil && *row.Quantity != 0 {
		movement := &entity.StockMovement{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			ProductID: product.ID,
			Type:      entity.TypeForQuantity(*row.Quantity),
			Quantity:  *row.Quantity,
			Notes:     fmt.Sprintf("Importación vía %s", source),
		}
		if err := r.Movements.Insert(movement); err != nil {
			return err
		}
	}
	return nil
}

// ensureCategory devuelve la categoría por nombre, creándola si no existe.
// Nombre vacío cae a la categoría por defecto.
func (uc *UseCase) ensureCategory(tenantID, name string, r Repos) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = entity.DefaultCategoryName
	}
	category, err := r.Categories.GetByTenantAndName(tenantID, name)
	if err == nil {
		return category, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}
	category = &entity.Category{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Name:     name,
	}
	if err := r.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ensureSupplier devuelve el proveedor por nombre, creándolo si no existe.
func (uc *UseCase) ensureSupplier(tenantID, name string, r Repos) (*entity.Supplier, error) {
	supplier, err := r.Suppliers.GetByTenantAndName(tenantID, name)
	if err == nil {
		return supplier, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}
	supplier = &entity.Supplier{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Name:     name,
		IsActive: true,
	}
	if err := r.Suppliers.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}
