package query

import (
	"context"
	"strings"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// handleListProducts lista productos con filtros de categoría/proveedor y
// ordenamiento resueltos en la capa de datos (aprovecha índices), y el filtro
// por estado de stock aplicado en memoria después del fetch: el estado depende
// del stock calculado, que no es una columna.
func (uc *UseCase) handleListProducts(ctx context.Context, tenantID string, p nlp.ListParams) (*dto.ChatResponse, error) {
	rows, err := uc.view.ListStock(ctx, tenantID, repository.StockFilter{
		Category:  p.Category,
		Supplier:  p.Supplier,
		SortField: p.SortField,
		SortOrder: p.SortOrder,
		Limit:     listPrefilterCap,
	})
	if err != nil {
		return nil, err
	}

	filtered := rows[:0:0]
	for _, row := range rows {
		if includeByStatus(row, p.Status) {
			filtered = append(filtered, row)
		}
	}

	if len(filtered) == 0 {
		var b strings.Builder
		b.WriteString(uc.msgs.Get(msgNoProducts))
		if p.Category != "" {
			b.WriteString(uc.msgs.F(msgInCategory, p.Category))
		}
		if p.Status == nlp.StatusOutOfStock {
			b.WriteString(uc.msgs.Get(msgOutOfStockQual))
		}
		b.WriteString(".")
		return &dto.ChatResponse{Text: b.String()}, nil
	}

	var b strings.Builder
	b.WriteString(uc.msgs.F(msgProductsFound, len(filtered)))
	shown := filtered
	if len(shown) > listDisplayCap {
		shown = shown[:listDisplayCap]
	}
	for _, row := range shown {
		tail := ""
		if row.SupplierName != nil {
			tail = uc.msgs.F(msgSupplierTail, *row.SupplierName)
		}
		b.WriteString(uc.msgs.F(msgProductRow,
			stockIcon(row.StockLevel), row.Product.Name, row.CategoryName,
			row.StockLevel, fmtPrice(row.Product.UnitPrice), tail))
	}
	if len(filtered) > listDisplayCap {
		b.WriteString(uc.msgs.F(msgAndOthers, len(filtered)-listDisplayCap))
	}
	return &dto.ChatResponse{Text: b.String()}, nil
}

// includeByStatus decide si una fila pasa el filtro de estado de stock.
// LOW_STOCK usa reorder_point del producto, o 5 si no está definido.
func includeByStatus(row repository.StockRow, status string) bool {
	switch status {
	case nlp.StatusOutOfStock:
		return row.StockLevel <= 0
	case nlp.StatusLowStock:
		threshold := int64(defaultLowStockThreshold)
		if row.Product.ReorderPoint != nil {
			threshold = int64(*row.Product.ReorderPoint)
		}
		return row.StockLevel <= threshold
	case nlp.StatusActive:
		return row.StockLevel > 0
	default:
		return true
	}
}
