package query

import (
	"fmt"

	"golang.org/x/text/language"
)

// Todo texto visible para el usuario vive en este catálogo; los handlers nunca
// incrustan literales. El idioma se elige con un matcher de golang.org/x/text
// a partir del locale pedido (Accept-Language o configuración): español por
// defecto, inglés como alternativa.

// Claves del catálogo.
const (
	msgUnknown            = "unknown"
	msgIntentUnsupported  = "intent_unsupported"
	msgApology            = "apology"
	msgNoAnswer           = "no_answer"
	msgNoProducts         = "no_products"
	msgInCategory         = "in_category"
	msgOutOfStockQual     = "out_of_stock_qual"
	msgProductsFound      = "products_found"
	msgProductRow         = "product_row"
	msgSupplierTail       = "supplier_tail"
	msgAndOthers          = "and_others"
	msgWhichProduct       = "which_product"
	msgSearchNotFound     = "search_not_found"
	msgSearchResults      = "search_results"
	msgSearchRow          = "search_row"
	msgViaSupplier        = "via_supplier"
	msgSuperlative        = "superlative"
	msgSuperlativePrice   = "superlative_price"
	msgMostExpensive      = "most_expensive"
	msgLeastExpensive     = "least_expensive"
	msgMostAvailable      = "most_available"
	msgLeastAvailable     = "least_available"
	msgMarginNoData       = "margin_no_data"
	msgMarginHeader       = "margin_header"
	msgMarginRow          = "margin_row"
	msgMarginChartTitle   = "margin_chart_title"
	msgMarginChartX       = "margin_chart_x"
	msgMarginChartY       = "margin_chart_y"
	msgGlobalStats        = "global_stats"
	msgCategoryChartTitle = "category_chart_title"
	msgCategoryChartX     = "category_chart_x"
	msgCategoryChartY     = "category_chart_y"
	msgSuppliersNone      = "suppliers_none"
	msgForCategory        = "for_category"
	msgSuppliersFound     = "suppliers_found"
	msgSupplierRow        = "supplier_row"
	msgSupplierStatsNone  = "supplier_stats_none"
	msgSupplierStatsText  = "supplier_stats_text"
	msgSupplierChartTitle = "supplier_chart_title"
	msgSupplierChartX     = "supplier_chart_x"
	msgSupplierChartY     = "supplier_chart_y"
	msgCategoryDistText   = "category_dist_text"
	msgCategoryPieTitle   = "category_pie_title"
	msgNoPriceData        = "no_price_data"
	msgHistText           = "hist_text"
	msgHistTitle          = "hist_title"
	msgHistX              = "hist_x"
	msgHistY              = "hist_y"
	msgTopProductsText    = "top_products_text"
	msgTopProductsTitle   = "top_products_title"
	msgTopProductsX       = "top_products_x"
	msgTopProductsY       = "top_products_y"
	msgChartUnsupported   = "chart_unsupported"
)

type catalog map[string]string

var spanish = catalog{
	msgUnknown:            "No entendí bien tu solicitud. Intenta reformular (ej: 'Productos sin stock', 'Estadísticas').",
	msgIntentUnsupported:  "Entiendo la intención '%s', pero todavía no sé procesarla.",
	msgApology:            "Lo siento, ocurrió un error consultando tus datos. Intenta de nuevo en unos minutos.",
	msgNoAnswer:           "Lo siento, no puedo generar una respuesta en este momento.",
	msgNoProducts:         "No encontré productos",
	msgInCategory:         " en la categoría '%s'",
	msgOutOfStockQual:     " sin stock",
	msgProductsFound:      "Estos son los productos encontrados (%d):\n",
	msgProductRow:         "%s **%s** (%s)\n   Stock: %d | Precio: %s%s\n",
	msgSupplierTail:       " | Proveedor: %s",
	msgAndOthers:          "... y %d más.",
	msgWhichProduct:       "¿Qué producto buscas?",
	msgSearchNotFound:     "No encontré ningún producto que coincida con '%s'.",
	msgSearchResults:      "Resultados para '%s':\n",
	msgSearchRow:          "%s **%s** (%s)%s: %d en stock\n",
	msgViaSupplier:        " vía %s",
	msgSuperlative:        "El producto %s es **%s** (%s)%s.\nStock: %d%s",
	msgSuperlativePrice:   ", Precio: %s",
	msgMostExpensive:      "más caro",
	msgLeastExpensive:     "más barato",
	msgMostAvailable:      "más disponible",
	msgLeastAvailable:     "menos disponible",
	msgMarginNoData:       "No puedo calcular los márgenes: faltan precios de venta o costos en los productos.",
	msgMarginHeader:       "**Análisis de margen**:\nMargen promedio por producto: %s.\n\nTop 5 productos más rentables:\n",
	msgMarginRow:          "- %s: margen %s (%s%%)\n",
	msgMarginChartTitle:   "Top 5 productos por margen (unitario)",
	msgMarginChartX:       "Producto",
	msgMarginChartY:       "Margen",
	msgGlobalStats:        "**Estadísticas globales**: hay %d productos repartidos en %d categorías.",
	msgCategoryChartTitle: "Número de productos por categoría",
	msgCategoryChartX:     "Categoría",
	msgCategoryChartY:     "Número de productos",
	msgSuppliersNone:      "No encontré proveedores",
	msgForCategory:        " para la categoría '%s'",
	msgSuppliersFound:     "Estos son los proveedores encontrados (%d)",
	msgSupplierRow:        "- **%s**\n",
	msgSupplierStatsNone:  "No hay suficientes datos para estadísticas de proveedores.",
	msgSupplierStatsText:  "Estos son los proveedores con más productos. El principal es **%s**.",
	msgSupplierChartTitle: "Top proveedores (número de productos)",
	msgSupplierChartX:     "Proveedor",
	msgSupplierChartY:     "Número de productos",
	msgCategoryDistText:   "Esta es la distribución del stock por categoría.",
	msgCategoryPieTitle:   "Distribución del stock por categoría",
	msgNoPriceData:        "No hay datos de precios.",
	msgHistText:           "Esta es la distribución de precios de tus productos.",
	msgHistTitle:          "Distribución de precios",
	msgHistX:              "Rango de precios",
	msgHistY:              "Número de productos",
	msgTopProductsText:    "Este es el gráfico de precios de los primeros productos.",
	msgTopProductsTitle:   "Precios de productos (Top 20)",
	msgTopProductsX:       "Producto",
	msgTopProductsY:       "Precio unitario",
	msgChartUnsupported:   "Todavía no puedo generar ese tipo de gráfico.",
}

var english = catalog{
	msgUnknown:            "I didn't quite get that. Try rephrasing (e.g. 'Out of stock products', 'Statistics').",
	msgIntentUnsupported:  "I understand the intent '%s', but I can't handle it yet.",
	msgApology:            "Sorry, something went wrong while querying your data. Please try again in a few minutes.",
	msgNoAnswer:           "Sorry, I can't generate an answer right now.",
	msgNoProducts:         "No products found",
	msgInCategory:         " in category '%s'",
	msgOutOfStockQual:     " out of stock",
	msgProductsFound:      "Here are the products found (%d):\n",
	msgProductRow:         "%s **%s** (%s)\n   Stock: %d | Price: %s%s\n",
	msgSupplierTail:       " | Supplier: %s",
	msgAndOthers:          "... and %d more.",
	msgWhichProduct:       "Which product are you looking for?",
	msgSearchNotFound:     "I couldn't find any product matching '%s'.",
	msgSearchResults:      "Results for '%s':\n",
	msgSearchRow:          "%s **%s** (%s)%s: %d in stock\n",
	msgViaSupplier:        " via %s",
	msgSuperlative:        "The %s product is **%s** (%s)%s.\nStock: %d%s",
	msgSuperlativePrice:   ", Price: %s",
	msgMostExpensive:      "most expensive",
	msgLeastExpensive:     "least expensive",
	msgMostAvailable:      "most available",
	msgLeastAvailable:     "least available",
	msgMarginNoData:       "I can't compute margins: unit price or cost price is missing on your products.",
	msgMarginHeader:       "**Margin analysis**:\nAverage margin per product: %s.\n\nTop 5 most profitable products:\n",
	msgMarginRow:          "- %s: margin %s (%s%%)\n",
	msgMarginChartTitle:   "Top 5 products by margin (unit)",
	msgMarginChartX:       "Product",
	msgMarginChartY:       "Margin",
	msgGlobalStats:        "**Global statistics**: you have %d products across %d categories.",
	msgCategoryChartTitle: "Products per category",
	msgCategoryChartX:     "Category",
	msgCategoryChartY:     "Product count",
	msgSuppliersNone:      "No suppliers found",
	msgForCategory:        " for category '%s'",
	msgSuppliersFound:     "Here are the suppliers found (%d)",
	msgSupplierRow:        "- **%s**\n",
	msgSupplierStatsNone:  "Not enough data for supplier statistics.",
	msgSupplierStatsText:  "Here are the suppliers with the most products. The top one is **%s**.",
	msgSupplierChartTitle: "Top suppliers (product count)",
	msgSupplierChartX:     "Supplier",
	msgSupplierChartY:     "Product count",
	msgCategoryDistText:   "Here is the stock distribution by category.",
	msgCategoryPieTitle:   "Stock distribution by category",
	msgNoPriceData:        "No price data available.",
	msgHistText:           "Here is the price distribution of your products.",
	msgHistTitle:          "Price distribution",
	msgHistX:              "Price range",
	msgHistY:              "Product count",
	msgTopProductsText:    "Here is the price chart for the first products.",
	msgTopProductsTitle:   "Product prices (Top 20)",
	msgTopProductsX:       "Product",
	msgTopProductsY:       "Unit price",
	msgChartUnsupported:   "I can't generate that kind of chart yet.",
}

var (
	supportedLocales = []language.Tag{language.Spanish, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
	catalogsByTag    = map[language.Tag]catalog{
		language.Spanish: spanish,
		language.English: english,
	}
)

// Messages catálogo resuelto para un locale concreto.
type Messages struct {
	c catalog
}

// MessagesFor resuelve el catálogo para un locale ("es", "en-US", encabezado
// Accept-Language completo, etc.). Lo irreconocible cae al español.
func MessagesFor(locale string) Messages {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	base, _ := tag.Base()
	for t, c := range catalogsByTag {
		b, _ := t.Base()
		if b == base {
			return Messages{c: c}
		}
	}
	return Messages{c: spanish}
}

// Get devuelve el texto de una clave sin argumentos.
func (m Messages) Get(key string) string {
	return m.c[key]
}

// F formatea el texto de una clave con argumentos.
func (m Messages) F(key string, args ...interface{}) string {
	return fmt.Sprintf(m.c[key], args...)
}

// Textos de degradación que el orquestador de chat necesita fuera de este
// paquete.

// Unknown texto para mensajes que no se pudieron interpretar.
func (m Messages) Unknown() string { return m.c[msgUnknown] }

// NoAnswer texto cuando el modelo no puede generar una respuesta libre.
func (m Messages) NoAnswer() string { return m.c[msgNoAnswer] }

// Apology texto genérico ante fallos internos de la capa de datos.
func (m Messages) Apology() string { return m.c[msgApology] }
