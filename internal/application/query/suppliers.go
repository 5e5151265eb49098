package query

import (
	"context"
	"strings"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
)

// handleListSuppliers lista los proveedores del tenant, opcionalmente acotados
// a los que surten una categoría.
func (uc *UseCase) handleListSuppliers(ctx context.Context, tenantID string, p nlp.SupplierParams) (*dto.ChatResponse, error) {
	suppliers, err := uc.view.ListSuppliers(ctx, tenantID, p.Category, supplierListCap)
	if err != nil {
		return nil, err
	}

	if len(suppliers) == 0 {
		text := uc.msgs.Get(msgSuppliersNone)
		if p.Category != "" {
			text += uc.msgs.F(msgForCategory, p.Category)
		}
		return &dto.ChatResponse{Text: text + "."}, nil
	}

	var b strings.Builder
	b.WriteString(uc.msgs.F(msgSuppliersFound, len(suppliers)))
	if p.Category != "" {
		b.WriteString(uc.msgs.F(msgForCategory, p.Category))
	}
	b.WriteString(":\n")
	for _, s := range suppliers {
		b.WriteString(uc.msgs.F(msgSupplierRow, s.Name))
	}
	return &dto.ChatResponse{Text: b.String()}, nil
}

// handleSupplierStats top de proveedores por número de productos, con gráfico
// de barras.
func (uc *UseCase) handleSupplierStats(ctx context.Context, tenantID string) (*dto.ChatResponse, error) {
	counts, err := uc.view.TopSuppliersByProductCount(ctx, tenantID, supplierStatsCap)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgSupplierStatsNone)}, nil
	}

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Name
		values[i] = float64(c.Count)
	}
	return &dto.ChatResponse{
		Text: uc.msgs.F(msgSupplierStatsText, counts[0].Name),
		Chart: newBarChart(
			uc.msgs.Get(msgSupplierChartTitle),
			uc.msgs.Get(msgSupplierChartX),
			uc.msgs.Get(msgSupplierChartY),
			labels, values),
	}, nil
}
