package nlp

// Intent intención clasificada de un mensaje del usuario. Enumeración cerrada:
// cualquier string fuera del conjunto se trata como IntentUnknown, nunca como error.
type Intent string

const (
	IntentListProducts     Intent = "LIST_PRODUCTS"
	IntentGetStats         Intent = "GET_STATS"
	IntentSearchProduct    Intent = "SEARCH_PRODUCT"
	IntentListSuppliers    Intent = "LIST_SUPPLIERS"
	IntentSupplierStats    Intent = "SUPPLIER_STATS"
	IntentPlotChart        Intent = "PLOT_CHART"
	IntentGeneralKnowledge Intent = "GENERAL_KNOWLEDGE"
	IntentUnknown          Intent = "UNKNOWN"
)

// Estados de stock reconocidos en la entidad filter_status.
const (
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusActive     = "ACTIVE"
)

// Tipos de estadística reconocidos en la entidad stat_type.
const (
	StatGlobal     = "global"
	StatByCategory = "by_category"
	StatBySupplier = "by_supplier"
	StatByProduct  = "by_product"
	StatMargin     = "margin"
)

// Tipos de gráfico reconocidos en la entidad graph_type.
const (
	GraphBar       = "bar"
	GraphPie       = "pie"
	GraphHistogram = "histogram"
)
