package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// Límites del pipeline de consultas.
const (
	// listPrefilterCap filas pedidas a la vista antes del filtro de estado en
	// memoria. El filtro por estado depende del stock calculado, así que se
	// aplica después del fetch: con más de 50 candidatos el conteo puede
	// quedarse corto respecto al total real del tenant. Aproximación aceptada.
	listPrefilterCap = 50

	listDisplayCap     = 10
	searchContainsCap  = 10
	searchDisplayCap   = 10
	supplierListCap    = 20
	supplierStatsCap   = 10
	topProductsCap     = 20
	marginTopN         = 5

	// defaultLowStockThreshold umbral de stock bajo cuando el producto no
	// define reorder_point.
	defaultLowStockThreshold = 5
)

// UseCase despachador del pipeline de consultas: recibe una intención ya
// resuelta y la enruta al handler correspondiente. Sin estado mutable entre
// requests; las dependencias entran por el constructor.
type UseCase struct {
	view repository.StockViewRepository
	msgs Messages
}

// NewUseCase construye el despachador inyectando la vista de stock y el
// catálogo de mensajes.
func NewUseCase(view repository.StockViewRepository, msgs Messages) *UseCase {
	return &UseCase{view: view, msgs: msgs}
}

// Execute enruta la intención a su handler. Para una Result bien formada solo
// falla si la capa de datos falla; el llamador (chat) convierte ese error en
// un texto de disculpa. Intenciones desconocidas o no soportadas devuelven
// texto fijo, nunca error.
func (uc *UseCase) Execute(ctx context.Context, tenantID string, res nlp.Result) (*dto.ChatResponse, error) {
	switch res.Intent {
	case nlp.IntentListProducts:
		return uc.handleListProducts(ctx, tenantID, res.List)
	case nlp.IntentGetStats:
		return uc.handleGetStats(ctx, tenantID, res.Stats)
	case nlp.IntentSearchProduct:
		return uc.handleSearchProduct(ctx, tenantID, res.Search)
	case nlp.IntentListSuppliers:
		return uc.handleListSuppliers(ctx, tenantID, res.Supplier)
	case nlp.IntentSupplierStats:
		return uc.handleSupplierStats(ctx, tenantID)
	case nlp.IntentPlotChart:
		return uc.handlePlotChart(ctx, tenantID, res.Chart)
	case nlp.IntentUnknown:
		return &dto.ChatResponse{Text: uc.msgs.Get(msgUnknown)}, nil
	default:
		// GENERAL_KNOWLEDGE se atiende antes de llegar aquí; cualquier otra
		// intención reconocida pero sin handler recibe texto explícito.
		return &dto.ChatResponse{Text: uc.msgs.F(msgIntentUnsupported, string(res.Intent))}, nil
	}
}

// stockIcon semáforo visual del nivel de stock en los listados.
func stockIcon(level int64) string {
	switch {
	case level <= 0:
		return "🔴"
	case level < 10:
		return "🟠"
	default:
		return "🟢"
	}
}

// fmtPrice formatea un precio opcional; "-" cuando no hay dato.
func fmtPrice(p *decimal.Decimal) string {
	if p == nil {
		return "-"
	}
	return p.StringFixed(2)
}
