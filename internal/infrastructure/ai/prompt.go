package ai

import (
	"regexp"
	"strings"
)

// analysisSystemPrompt clasifica el mensaje del usuario en una intención +
// entidades. El contrato de salida es el JSON NLPAnalysis; el modelo se fuerza
// a modo JSON en ambos proveedores, pero extractJSON limpia igual cualquier
// envoltura markdown por si acaso.
const analysisSystemPrompt = `Eres el analizador de un asistente de gestión de inventario.
Clasifica el mensaje del usuario y devuelve ÚNICAMENTE un objeto JSON válido con esta estructura exacta:
{
  "intent": "<una de: LIST_PRODUCTS, GET_STATS, SEARCH_PRODUCT, LIST_SUPPLIERS, SUPPLIER_STATS, PLOT_CHART, GENERAL_KNOWLEDGE, UNKNOWN>",
  "entities": { <solo las claves presentes en el mensaje> },
  "summary": "<reformulación breve de lo que pide el usuario>"
}

Intenciones:
- LIST_PRODUCTS: listar/filtrar productos del inventario ("productos sin stock", "productos de la categoría bebidas").
- GET_STATS: estadísticas o análisis ("estadísticas", "análisis de margen", "cuántos productos tengo").
- SEARCH_PRODUCT: buscar un producto concreto o un extremo ("busca tornillo M4", "el producto más caro").
- LIST_SUPPLIERS: listar proveedores ("mis proveedores", "proveedores de bebidas").
- SUPPLIER_STATS: estadísticas de proveedores ("qué proveedor tiene más productos").
- PLOT_CHART: el usuario pide explícitamente un gráfico ("grafica", "muéstrame un diagrama", "histograma de precios").
- GENERAL_KNOWLEDGE: pregunta teórica de gestión de inventario no ligada a los datos ("qué es el stock de seguridad").
- UNKNOWN: nada de lo anterior.

Entidades posibles (omite las que no apliquen):
- "category": nombre de categoría mencionado.
- "supplier_name": nombre de proveedor mencionado.
- "product_name": nombre del producto buscado.
- "filter_status": "OUT_OF_STOCK" | "LOW_STOCK" | "ACTIVE".
- "sort_field": "price" | "quantity".
- "sort_order": "ASC" | "DESC" (superlativos: "el más caro" -> sort_field "price", sort_order "DESC").
- "stat_type": "global" | "by_category" | "by_supplier" | "by_product" | "margin".
- "graph_type": "bar" | "pie" | "histogram".

No incluyas texto fuera del JSON.`

// answerSystemPrompt respuesta libre para preguntas teóricas de inventario.
const answerSystemPrompt = `Eres un asistente experto en gestión de inventario.
Responde de forma breve y práctica, en el idioma del usuario. Máximo 150 palabras.`

// jsonBlockRe captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos: quitar bloques de código markdown y, si hace falta,
// capturar el primer bloque { … } por regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
