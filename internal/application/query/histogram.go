package query

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// priceHistogramBins número de intervalos de la distribución de precios.
const priceHistogramBins = 5

// buildPriceHistogram agrupa precios en 5 intervalos de ancho uniforme entre
// el mínimo y el máximo. Los primeros cuatro intervalos son semiabiertos
// [low, high); el último es cerrado [low, high] para que el precio máximo
// nunca quede fuera. Si todos los precios son iguales hay un único intervalo.
// Las etiquetas muestran los límites truncados a entero.
func buildPriceHistogram(prices []decimal.Decimal) (labels []string, counts []float64) {
	if len(prices) == 0 {
		return nil, nil
	}

	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p.LessThan(min) {
			min = p
		}
		if p.GreaterThan(max) {
			max = p
		}
	}

	// Caso degenerado: un solo intervalo con todos los precios.
	if min.Equal(max) {
		return []string{binLabel(min, max)}, []float64{float64(len(prices))}
	}

	width := max.Sub(min).Div(decimal.NewFromInt(priceHistogramBins))
	edges := make([]decimal.Decimal, priceHistogramBins+1)
	for i := 0; i < priceHistogramBins; i++ {
		edges[i] = min.Add(width.Mul(decimal.NewFromInt(int64(i))))
	}
	edges[priceHistogramBins] = max // el borde superior es exactamente el máximo

	labels = make([]string, priceHistogramBins)
	counts = make([]float64, priceHistogramBins)
	for i := 0; i < priceHistogramBins; i++ {
		labels[i] = binLabel(edges[i], edges[i+1])
	}

	for _, p := range prices {
		for i := 0; i < priceHistogramBins; i++ {
			last := i == priceHistogramBins-1
			if p.GreaterThanOrEqual(edges[i]) &&
				(p.LessThan(edges[i+1]) || (last && p.LessThanOrEqual(edges[i+1]))) {
				counts[i]++
				break
			}
		}
	}
	return labels, counts
}

func binLabel(low, high decimal.Decimal) string {
	return fmt.Sprintf("%d-%d", low.IntPart(), high.IntPart())
}
