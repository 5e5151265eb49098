package query

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
)

// productMargin margen unitario calculado de un producto con precio y costo.
type productMargin struct {
	Name          string
	Margin        decimal.Decimal
	MarginPercent decimal.Decimal
}

// handleGetStats estadísticas del tenant. stat_type by_product/margin produce
// el análisis de margen; cualquier otro valor (o ninguno) produce las
// estadísticas globales.
func (uc *UseCase) handleGetStats(ctx context.Context, tenantID string, p nlp.StatsParams) (*dto.ChatResponse, error) {
	if p.StatType == nlp.StatByProduct || p.StatType == nlp.StatMargin {
		return uc.marginAnalysis(ctx, tenantID)
	}
	return uc.globalStats(ctx, tenantID)
}

// marginAnalysis margen = precio - costo por producto; solo participan los
// productos con ambos valores definidos. El top 5 alimenta el gráfico; el
// promedio se calcula sobre TODOS los productos calificados, no solo el top.
func (uc *UseCase) marginAnalysis(ctx context.Context, tenantID string) (*dto.ChatResponse, error) {
	products, err := uc.view.ListCostedProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgMarginNoData)}, nil
	}

	hundred := decimal.NewFromInt(100)
	margins := make([]productMargin, 0, len(products))
	total := decimal.Zero
	for _, prod := range products {
		margin := prod.UnitPrice.Sub(*prod.CostPrice)
		percent := decimal.Zero
		if prod.UnitPrice.IsPositive() {
			percent = margin.Div(*prod.UnitPrice).Mul(hundred)
		}
		margins = append(margins, productMargin{
			Name:          prod.Name,
			Margin:        margin,
			MarginPercent: percent,
		})
		total = total.Add(margin)
	}

	// Orden estable para que dos ejecuciones con los mismos datos produzcan
	// el mismo top 5 aunque haya márgenes empatados.
	sort.SliceStable(margins, func(i, j int) bool {
		return margins[i].Margin.GreaterThan(margins[j].Margin)
	})
	top := margins
	if len(top) > marginTopN {
		top = top[:marginTopN]
	}
	avg := total.Div(decimal.NewFromInt(int64(len(margins))))

	labels := make([]string, len(top))
	values := make([]float64, len(top))
	var b strings.Builder
	b.WriteString(uc.msgs.F(msgMarginHeader, avg.StringFixed(2)))
	for i, m := range top {
		labels[i] = m.Name
		values[i] = m.Margin.InexactFloat64()
		b.WriteString(uc.msgs.F(msgMarginRow, m.Name, m.Margin.StringFixed(2), m.MarginPercent.StringFixed(1)))
	}

	return &dto.ChatResponse{
		Text: b.String(),
		Chart: newBarChart(
			uc.msgs.Get(msgMarginChartTitle),
			uc.msgs.Get(msgMarginChartX),
			uc.msgs.Get(msgMarginChartY),
			labels, values,
		),
	}, nil
}

// globalStats total de productos + conteo por categoría (las categorías
// vacías no aparecen: INNER JOIN en la vista).
func (uc *UseCase) globalStats(ctx context.Context, tenantID string) (*dto.ChatResponse, error) {
	total, err := uc.view.CountProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.view.CountProductsByCategory(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(byCategory))
	values := make([]float64, len(byCategory))
	for i, c := range byCategory {
		labels[i] = c.Name
		values[i] = float64(c.Count)
	}

	return &dto.ChatResponse{
		Text: uc.msgs.F(msgGlobalStats, total, len(byCategory)),
		Chart: newBarChart(
			uc.msgs.Get(msgCategoryChartTitle),
			uc.msgs.Get(msgCategoryChartX),
			uc.msgs.Get(msgCategoryChartY),
			labels, values,
		),
	}, nil
}
