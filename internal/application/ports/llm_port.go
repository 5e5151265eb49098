package ports

import (
	"context"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
)

// NLPService define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Groq, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación
// solo conoce este contrato, no la implementación concreta.
type NLPService interface {
	// AnalyzeQuery clasifica el mensaje libre del usuario y devuelve la
	// intención + entidades en el contrato JSON NLPAnalysis. El contexto debe
	// llevar un timeout para evitar bloqueos en llamadas externas. Un error
	// aquí NUNCA debe llegar al usuario como fallo de transporte: el
	// orquestador de chat lo degrada a una respuesta de "no entendí".
	AnalyzeQuery(ctx context.Context, message string) (*dto.NLPAnalysis, error)

	// GenerateAnswer respuesta libre para preguntas generales/teóricas
	// (GENERAL_KNOWLEDGE), fuera del pipeline de consultas.
	GenerateAnswer(ctx context.Context, message string) (string, error)
}
