package dto

// ChatRequest mensaje libre del usuario hacia el asistente.
type ChatRequest struct {
	Message string `json:"message"`
}

// NLPAnalysis contrato de salida del LLM: intención clasificada + entidades
// extraídas + resumen legible. Entities es un mapa laxo tal como lo devuelve
// el modelo; el resolver lo valida UNA vez y el resto del pipeline trabaja
// con parámetros tipados.
type NLPAnalysis struct {
	Intent   string            `json:"intent"`
	Entities map[string]string `json:"entities"`
	Summary  string            `json:"summary"`
}

// ChartDTO descriptor abstracto de gráfico. El contrato con el frontend son
// las series paralelas Labels/Values; no asume ninguna librería de plotting.
type ChartDTO struct {
	Kind   string    `json:"kind"` // bar | pie
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"` // solo bar
	YLabel string    `json:"y_label,omitempty"` // solo bar
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ChatResponse respuesta del asistente: texto renderizado y, opcionalmente,
// un gráfico.
type ChatResponse struct {
	Text  string    `json:"text"`
	Chart *ChartDTO `json:"chart,omitempty"`
}
