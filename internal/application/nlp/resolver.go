package nlp

import (
	"strings"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// El LLM devuelve un mapa laxo de entidades. Este resolver lo valida UNA sola
// vez contra listas blancas y lo convierte en parámetros tipados por intención;
// los handlers aguas abajo no repiten chequeos de nulos ni de valores.

// ListParams parámetros validados para LIST_PRODUCTS.
type ListParams struct {
	Category  string // substring, case-insensitive
	Supplier  string // substring, case-insensitive
	Status    string // "" | OUT_OF_STOCK | LOW_STOCK | ACTIVE
	SortField string // "" | price | quantity
	SortOrder string // ASC | DESC (ASC por defecto si hay SortField)
}

// StatsParams parámetros validados para GET_STATS.
type StatsParams struct {
	StatType string // "" | global | by_category | by_supplier | by_product | margin
}

// SearchParams parámetros validados para SEARCH_PRODUCT.
// SortOrder presente = consulta superlativa ("el más caro"): el término se ignora.
type SearchParams struct {
	Term      string
	SortField string
	SortOrder string
}

// SupplierParams parámetros validados para LIST_SUPPLIERS.
type SupplierParams struct {
	Category string
}

// ChartParams parámetros validados para PLOT_CHART.
type ChartParams struct {
	StatType  string
	GraphType string
}

// Result resultado del resolver: intención normalizada + parámetros tipados.
// Solo el campo de parámetros correspondiente a la intención viene poblado.
type Result struct {
	Intent   Intent
	Summary  string
	List     ListParams
	Stats    StatsParams
	Search   SearchParams
	Supplier SupplierParams
	Chart    ChartParams
}

// Unknown resultado fijo para análisis ausente o irreconocible.
func Unknown(summary string) Result {
	return Result{Intent: IntentUnknown, Summary: summary}
}

// Resolve normaliza la intención y valida las entidades del análisis NLP.
// Claves no reconocidas se ignoran; valores fuera de la lista blanca se
// descartan. Nunca falla: lo irreconocible termina en IntentUnknown.
func Resolve(a *dto.NLPAnalysis) Result {
	if a == nil {
		return Unknown("")
	}

	intent := normalizeIntent(a.Intent)
	res := Result{Intent: intent, Summary: a.Summary}
	ent := a.Entities

	switch intent {
	case IntentListProducts:
		res.List = ListParams{
			Category:  strings.TrimSpace(ent["category"]),
			Supplier:  strings.TrimSpace(ent["supplier_name"]),
			Status:    pick(ent["filter_status"], strings.ToUpper, StatusOutOfStock, StatusLowStock, StatusActive),
			SortField: pick(ent["sort_field"], strings.ToLower, repository.SortByPrice, repository.SortByStock),
			SortOrder: pick(ent["sort_order"], strings.ToUpper, repository.OrderAsc, repository.OrderDesc),
		}
		if res.List.SortField != "" && res.List.SortOrder == "" {
			res.List.SortOrder = repository.OrderAsc
		}
	case IntentGetStats:
		res.Stats = StatsParams{
			StatType: pick(ent["stat_type"], strings.ToLower, StatGlobal, StatByCategory, StatBySupplier, StatByProduct, StatMargin),
		}
	case IntentSearchProduct:
		res.Search = SearchParams{
			Term:      strings.TrimSpace(ent["product_name"]),
			SortField: pick(ent["sort_field"], strings.ToLower, repository.SortByPrice, repository.SortByStock),
			SortOrder: pick(ent["sort_order"], strings.ToUpper, repository.OrderAsc, repository.OrderDesc),
		}
	case IntentListSuppliers:
		res.Supplier = SupplierParams{
			Category: strings.TrimSpace(ent["category"]),
		}
	case IntentPlotChart:
		res.Chart = ChartParams{
			StatType:  pick(ent["stat_type"], strings.ToLower, StatGlobal, StatByCategory, StatBySupplier, StatByProduct, StatMargin),
			GraphType: pick(ent["graph_type"], strings.ToLower, GraphBar, GraphPie, GraphHistogram),
		}
	}

	return res
}

// normalizeIntent mapea el string crudo del LLM al enum. Case-insensitive;
// fuera del conjunto -> IntentUnknown.
func normalizeIntent(raw string) Intent {
	switch Intent(strings.ToUpper(strings.TrimSpace(raw))) {
	case IntentListProducts:
		return IntentListProducts
	case IntentGetStats:
		return IntentGetStats
	case IntentSearchProduct:
		return IntentSearchProduct
	case IntentListSuppliers:
		return IntentListSuppliers
	case IntentSupplierStats:
		return IntentSupplierStats
	case IntentPlotChart:
		return IntentPlotChart
	case IntentGeneralKnowledge:
		return IntentGeneralKnowledge
	default:
		return IntentUnknown
	}
}

// pick normaliza el valor y lo devuelve solo si está en la lista blanca.
func pick(raw string, normalize func(string) string, allowed ...string) string {
	v := normalize(strings.TrimSpace(raw))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return ""
}
