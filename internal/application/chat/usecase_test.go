package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/query"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

// fakeNLP implementación controlable del puerto NLP.
type fakeNLP struct {
	analysis   *dto.NLPAnalysis
	analyzeErr error
	answer     string
	answerErr  error
}

func (f *fakeNLP) AnalyzeQuery(context.Context, string) (*dto.NLPAnalysis, error) {
	return f.analysis, f.analyzeErr
}

func (f *fakeNLP) GenerateAnswer(context.Context, string) (string, error) {
	return f.answer, f.answerErr
}

// brokenView vista de stock cuyas operaciones siempre fallan (capa de datos caída).
type brokenView struct{ err error }

func (v brokenView) ListStock(context.Context, string, repository.StockFilter) ([]repository.StockRow, error) {
	return nil, v.err
}
func (v brokenView) CountProducts(context.Context, string) (int, error) { return 0, v.err }
func (v brokenView) CountProductsByCategory(context.Context, string) ([]repository.CategoryCount, error) {
	return nil, v.err
}
func (v brokenView) ListCostedProducts(context.Context, string) ([]entity.Product, error) {
	return nil, v.err
}
func (v brokenView) ListSuppliers(context.Context, string, string, int) ([]entity.Supplier, error) {
	return nil, v.err
}
func (v brokenView) TopSuppliersByProductCount(context.Context, string, int) ([]repository.SupplierCount, error) {
	return nil, v.err
}
func (v brokenView) ListPrices(context.Context, string) ([]decimal.Decimal, error) {
	return nil, v.err
}

func newChatUseCase(nlpSvc *fakeNLP, view repository.StockViewRepository) *UseCase {
	msgs := query.MessagesFor("es")
	return NewUseCase(nlpSvc, query.NewUseCase(view, msgs), msgs, logger.Nop())
}

// El fallo del proveedor NLP se degrada a "no entendí", nunca a un error.
func TestExecute_NLPCaidoDegradaAUnknown(t *testing.T) {
	uc := newChatUseCase(&fakeNLP{analyzeErr: errors.New("proveedor caído")}, brokenView{})

	resp := uc.Execute(context.Background(), "tenant-1", "productos sin stock")
	require.NotNil(t, resp)
	assert.Equal(t, query.MessagesFor("es").Unknown(), resp.Text)
	assert.Nil(t, resp.Chart)
}

// GENERAL_KNOWLEDGE se responde con texto libre del modelo.
func TestExecute_ConocimientoGeneral(t *testing.T) {
	uc := newChatUseCase(&fakeNLP{
		analysis: &dto.NLPAnalysis{Intent: "GENERAL_KNOWLEDGE"},
		answer:   "FIFO significa first in, first out.",
	}, brokenView{})

	resp := uc.Execute(context.Background(), "tenant-1", "¿qué es FIFO?")
	assert.Equal(t, "FIFO significa first in, first out.", resp.Text)
}

// Si la respuesta libre también falla, se devuelve la disculpa de no-respuesta.
func TestExecute_ConocimientoGeneralFalla(t *testing.T) {
	uc := newChatUseCase(&fakeNLP{
		analysis:  &dto.NLPAnalysis{Intent: "GENERAL_KNOWLEDGE"},
		answerErr: errors.New("timeout"),
	}, brokenView{})

	resp := uc.Execute(context.Background(), "tenant-1", "¿qué es FIFO?")
	assert.Equal(t, query.MessagesFor("es").NoAnswer(), resp.Text)
}

// Un fallo de la capa de datos produce una disculpa genérica; el detalle del
// error interno jamás viaja en la respuesta.
func TestExecute_FalloDeDatosNoFiltraDetalle(t *testing.T) {
	uc := newChatUseCase(&fakeNLP{
		analysis: &dto.NLPAnalysis{Intent: "LIST_PRODUCTS"},
	}, brokenView{err: errors.New("pgx: connection refused host=10.0.0.5")})

	resp := uc.Execute(context.Background(), "tenant-1", "lista los productos")
	assert.Equal(t, query.MessagesFor("es").Apology(), resp.Text)
	assert.NotContains(t, resp.Text, "pgx")
	assert.NotContains(t, resp.Text, "10.0.0.5")
}

// Las intenciones que no tocan datos responden aunque la vista esté caída.
func TestExecute_IntencionSinDatos(t *testing.T) {
	uc := newChatUseCase(&fakeNLP{
		analysis: &dto.NLPAnalysis{Intent: "SEARCH_PRODUCT"},
	}, brokenView{err: errors.New("no debería llamarse")})

	resp := uc.Execute(context.Background(), "tenant-1", "busca")
	assert.Equal(t, "¿Qué producto buscas?", resp.Text)
}
