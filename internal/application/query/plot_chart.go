package query

import (
	"context"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// handlePlotChart construye el descriptor de gráfico pedido. Cuando falta
// stat_type se infiere del tipo de gráfico: histograma implica precios por
// producto, pastel implica categorías.
func (uc *UseCase) handlePlotChart(ctx context.Context, tenantID string, p nlp.ChartParams) (*dto.ChatResponse, error) {
	statType := p.StatType
	if statType == "" {
		switch p.GraphType {
		case nlp.GraphHistogram:
			statType = nlp.StatByProduct
		default:
			statType = nlp.StatByCategory
		}
	}

	switch statType {
	case nlp.StatByCategory, nlp.StatGlobal:
		return uc.categoryChart(ctx, tenantID, p.GraphType)
	case nlp.StatBySupplier:
		return uc.handleSupplierStats(ctx, tenantID)
	case nlp.StatByProduct:
		// El histograma solo se entrega si se pidió explícitamente; por
		// producto sin graph_type son las barras de precio por producto.
		if p.GraphType == nlp.GraphHistogram {
			return uc.priceHistogramChart(ctx, tenantID)
		}
		return uc.topProductPricesChart(ctx, tenantID)
	default:
		return &dto.ChatResponse{Text: uc.msgs.Get(msgChartUnsupported)}, nil
	}
}

// categoryChart distribución de productos por categoría; pastel por defecto,
// barras si se pidió explícitamente.
func (uc *UseCase) categoryChart(ctx context.Context, tenantID string, graphType string) (*dto.ChatResponse, error) {
	counts, err := uc.view.CountProductsByCategory(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Name
		values[i] = float64(c.Count)
	}

	resp := &dto.ChatResponse{Text: uc.msgs.Get(msgCategoryDistText)}
	if graphType == nlp.GraphBar {
		resp.Chart = newBarChart(
			uc.msgs.Get(msgCategoryChartTitle),
			uc.msgs.Get(msgCategoryChartX),
			uc.msgs.Get(msgCategoryChartY),
			labels, values)
	} else {
		resp.Chart = newPieChart(uc.msgs.Get(msgCategoryPieTitle), labels, values)
	}
	return resp, nil
}

// priceHistogramChart histograma de precios unitarios en cinco rangos iguales.
func (uc *UseCase) priceHistogramChart(ctx context.Context, tenantID string) (*dto.ChatResponse, error) {
	prices, err := uc.view.ListPrices(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgNoPriceData)}, nil
	}

	labels, counts := buildPriceHistogram(prices)
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	return &dto.ChatResponse{
		Text: uc.msgs.Get(msgHistText),
		Chart: newBarChart(
			uc.msgs.Get(msgHistTitle),
			uc.msgs.Get(msgHistX),
			uc.msgs.Get(msgHistY),
			labels, values),
	}, nil
}

// topProductPricesChart barras con el precio de los primeros productos.
func (uc *UseCase) topProductPricesChart(ctx context.Context, tenantID string) (*dto.ChatResponse, error) {
	rows, err := uc.view.ListStock(ctx, tenantID, repository.StockFilter{Limit: topProductsCap})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgNoPriceData)}, nil
	}

	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.Product.UnitPrice == nil {
			continue
		}
		labels = append(labels, row.Product.Name)
		f, _ := row.Product.UnitPrice.Float64()
		values = append(values, f)
	}
	if len(labels) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgNoPriceData)}, nil
	}
	return &dto.ChatResponse{
		Text: uc.msgs.Get(msgTopProductsText),
		Chart: newBarChart(
			uc.msgs.Get(msgTopProductsTitle),
			uc.msgs.Get(msgTopProductsX),
			uc.msgs.Get(msgTopProductsY),
			labels, values),
	}, nil
}
