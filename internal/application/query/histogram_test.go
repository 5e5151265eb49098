package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func TestBuildPriceHistogram_Vacio(t *testing.T) {
	labels, counts := buildPriceHistogram(nil)
	assert.Nil(t, labels)
	assert.Nil(t, counts)
}

// Todos los precios iguales: un único intervalo con el total.
func TestBuildPriceHistogram_Degenerado(t *testing.T) {
	labels, counts := buildPriceHistogram(prices("25", "25", "25"))
	require.Len(t, labels, 1)
	assert.Equal(t, "25-25", labels[0])
	assert.Equal(t, []float64{3}, counts)
}

// Cada precio cae en exactamente un intervalo: la suma de conteos es el total.
func TestBuildPriceHistogram_Cobertura(t *testing.T) {
	in := prices("10", "15", "22", "37", "41", "58", "60")
	labels, counts := buildPriceHistogram(in)
	require.Len(t, labels, 5)
	require.Len(t, counts, 5)

	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, float64(len(in)), total)
}

// El mínimo cuenta en el primer intervalo y el máximo en el último (el borde
// superior del último intervalo es cerrado).
func TestBuildPriceHistogram_Extremos(t *testing.T) {
	_, counts := buildPriceHistogram(prices("10", "60"))
	require.Len(t, counts, 5)
	assert.Equal(t, float64(1), counts[0])
	assert.Equal(t, float64(1), counts[4])
}

// Etiquetas con los límites truncados a entero: 10..60 con ancho 10.
func TestBuildPriceHistogram_Etiquetas(t *testing.T) {
	labels, _ := buildPriceHistogram(prices("10", "60"))
	assert.Equal(t, []string{"10-20", "20-30", "30-40", "40-50", "50-60"}, labels)
}

// Precios con decimales: los límites se truncan pero el conteo usa los valores exactos.
func TestBuildPriceHistogram_Decimales(t *testing.T) {
	_, counts := buildPriceHistogram(prices("0.99", "1.50", "2.99"))
	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, float64(3), total)
}
