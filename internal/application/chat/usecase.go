package chat

import (
	"context"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
	"github.com/jhoicas/stockpilot-api/internal/application/ports"
	"github.com/jhoicas/stockpilot-api/internal/application/query"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

// UseCase orquestador del chat: análisis NLP, resolución de intención y
// despacho al pipeline de consultas. Convierte cualquier fallo interno en una
// respuesta degradada; un mensaje bien formado nunca produce error de
// transporte.
type UseCase struct {
	nlpSvc ports.NLPService
	querUC *query.UseCase
	msgs   query.Messages
	log    *logger.Logger
}

// NewUseCase construye el orquestador de chat.
func NewUseCase(nlpSvc ports.NLPService, querUC *query.UseCase, msgs query.Messages, log *logger.Logger) *UseCase {
	return &UseCase{nlpSvc: nlpSvc, querUC: querUC, msgs: msgs, log: log}
}

// Execute procesa un mensaje libre del usuario y devuelve texto + gráfico
// opcional. Política de degradación:
//   - el análisis NLP falla -> respuesta de "no entendí" (el proveedor puede
//     estar caído; el usuario solo ve una invitación a reformular);
//   - GENERAL_KNOWLEDGE -> respuesta libre del modelo, o disculpa si falla;
//   - la capa de datos falla -> disculpa genérica, el detalle queda en el log
//     (nunca se filtra el error interno al usuario).
func (uc *UseCase) Execute(ctx context.Context, tenantID, message string) *dto.ChatResponse {
	analysis, err := uc.nlpSvc.AnalyzeQuery(ctx, message)
	if err != nil {
		uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("análisis NLP falló")
		return &dto.ChatResponse{Text: uc.msgs.Unknown()}
	}

	res := nlp.Resolve(analysis)

	if res.Intent == nlp.IntentGeneralKnowledge {
		answer, err := uc.nlpSvc.GenerateAnswer(ctx, message)
		if err != nil {
			uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("generación de respuesta libre falló")
			return &dto.ChatResponse{Text: uc.msgs.NoAnswer()}
		}
		return &dto.ChatResponse{Text: answer}
	}

	resp, err := uc.querUC.Execute(ctx, tenantID, res)
	if err != nil {
		uc.log.Error().Err(err).
			Str("tenant_id", tenantID).
			Str("intent", string(res.Intent)).
			Msg("error consultando la vista de stock")
		return &dto.ChatResponse{Text: uc.msgs.Apology()}
	}
	return resp
}
