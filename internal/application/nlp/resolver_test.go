package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

func TestResolve_AnalisisNulo(t *testing.T) {
	res := Resolve(nil)
	assert.Equal(t, IntentUnknown, res.Intent)
}

// La intención se normaliza case-insensitive; fuera del conjunto -> UNKNOWN.
func TestResolve_NormalizacionDeIntencion(t *testing.T) {
	cases := []struct {
		raw  string
		want Intent
	}{
		{"LIST_PRODUCTS", IntentListProducts},
		{"list_products", IntentListProducts},
		{"  Search_Product  ", IntentSearchProduct},
		{"general_knowledge", IntentGeneralKnowledge},
		{"DROP_TABLE", IntentUnknown},
		{"", IntentUnknown},
	}
	for _, tc := range cases {
		res := Resolve(&dto.NLPAnalysis{Intent: tc.raw})
		assert.Equal(t, tc.want, res.Intent, "intent crudo %q", tc.raw)
	}
}

// Valores de entidad fuera de la lista blanca se descartan sin error.
func TestResolve_ListaBlancaDeEntidades(t *testing.T) {
	res := Resolve(&dto.NLPAnalysis{
		Intent: "LIST_PRODUCTS",
		Entities: map[string]string{
			"category":      " Bebidas ",
			"filter_status": "out_of_stock", // se normaliza a mayúsculas
			"sort_field":    "name",         // no soportado: se descarta
			"sort_order":    "sideways",     // no soportado: se descarta
		},
	})
	assert.Equal(t, IntentListProducts, res.Intent)
	assert.Equal(t, "Bebidas", res.List.Category)
	assert.Equal(t, StatusOutOfStock, res.List.Status)
	assert.Empty(t, res.List.SortField)
	assert.Empty(t, res.List.SortOrder)
}

// sort_field sin sort_order recibe ASC por defecto.
func TestResolve_OrdenAscendentePorDefecto(t *testing.T) {
	res := Resolve(&dto.NLPAnalysis{
		Intent:   "LIST_PRODUCTS",
		Entities: map[string]string{"sort_field": "PRICE"},
	})
	assert.Equal(t, repository.SortByPrice, res.List.SortField)
	assert.Equal(t, repository.OrderAsc, res.List.SortOrder)
}

// Consulta superlativa: SEARCH_PRODUCT con campo y dirección de ordenamiento.
func TestResolve_BusquedaSuperlativa(t *testing.T) {
	res := Resolve(&dto.NLPAnalysis{
		Intent: "SEARCH_PRODUCT",
		Entities: map[string]string{
			"sort_field": "price",
			"sort_order": "desc",
		},
	})
	assert.Equal(t, repository.SortByPrice, res.Search.SortField)
	assert.Equal(t, repository.OrderDesc, res.Search.SortOrder)
	assert.Empty(t, res.Search.Term)
}

// Claves de entidad no reconocidas simplemente se ignoran.
func TestResolve_ClavesDesconocidasIgnoradas(t *testing.T) {
	res := Resolve(&dto.NLPAnalysis{
		Intent: "GET_STATS",
		Entities: map[string]string{
			"stat_type":     "MARGIN",
			"algo_invntado": "x",
		},
	})
	assert.Equal(t, StatMargin, res.Stats.StatType)
}

// Solo se puebla el bloque de parámetros de la intención resuelta.
func TestResolve_ParametrosPorIntencion(t *testing.T) {
	res := Resolve(&dto.NLPAnalysis{
		Intent:   "PLOT_CHART",
		Entities: map[string]string{"graph_type": "histogram", "category": "Bebidas"},
	})
	assert.Equal(t, GraphHistogram, res.Chart.GraphType)
	assert.Empty(t, res.List.Category) // "category" no aplica a PLOT_CHART
}
