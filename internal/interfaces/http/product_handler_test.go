package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockpilot-api/internal/interfaces/http"
)

// stubStockView vista fija que registra el último filtro recibido.
type stubStockView struct {
	rows       []repository.StockRow
	lastFilter repository.StockFilter
}

func (s *stubStockView) ListStock(_ context.Context, _ string, f repository.StockFilter) ([]repository.StockRow, error) {
	s.lastFilter = f
	out := s.rows
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			out = nil
		} else {
			out = out[f.Offset:]
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
func (s *stubStockView) CountProducts(context.Context, string) (int, error) { return len(s.rows), nil }
func (s *stubStockView) CountProductsByCategory(context.Context, string) ([]repository.CategoryCount, error) {
	return nil, nil
}
func (s *stubStockView) ListCostedProducts(context.Context, string) ([]entity.Product, error) {
	return nil, nil
}
func (s *stubStockView) ListSuppliers(context.Context, string, string, int) ([]entity.Supplier, error) {
	return nil, nil
}
func (s *stubStockView) TopSuppliersByProductCount(context.Context, string, int) ([]repository.SupplierCount, error) {
	return nil, nil
}
func (s *stubStockView) ListPrices(context.Context, string) ([]decimal.Decimal, error) {
	return nil, nil
}

// stubProductRepo repositorio fijo para GetByID.
type stubProductRepo struct {
	product *entity.Product
}

func (s *stubProductRepo) Create(*entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	if s.product != nil && s.product.ID == id {
		return s.product, nil
	}
	return nil, domain.ErrNotFound
}
func (s *stubProductRepo) GetByTenantAndSKU(string, string) (*entity.Product, error) {
	return nil, domain.ErrNotFound
}
func (s *stubProductRepo) Update(*entity.Product) error { return nil }
func (s *stubProductRepo) ListByTenant(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func buildProductApp(view *stubStockView, repo *stubProductRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewProductHandler(view, repo)
	app.Get("/products", apphttp.AuthMiddleware(testJWTSecret), h.List)
	app.Get("/products/:id", apphttp.AuthMiddleware(testJWTSecret), h.GetByID)
	return app
}

func stubRows(n int) []repository.StockRow {
	rows := make([]repository.StockRow, n)
	for i := range rows {
		rows[i] = repository.StockRow{
			Product:      entity.Product{ID: fmt.Sprintf("id-%02d", i), TenantID: testTenantID, Name: fmt.Sprintf("P%02d", i)},
			CategoryName: "General",
		}
	}
	return rows
}

type stockPage struct {
	Items []json.RawMessage `json:"items"`
	Page  struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"page"`
}

func getProducts(t *testing.T, app *fiber.App, path string) stockPage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleReader))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body stockPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// Sin parámetros de query aplica la paginación por defecto (límite 20).
func TestProductList_PaginacionPorDefecto(t *testing.T) {
	view := &stubStockView{rows: stubRows(30)}
	app := buildProductApp(view, &stubProductRepo{})

	body := getProducts(t, app, "/products")
	assert.Len(t, body.Items, 20)
	assert.Equal(t, 20, body.Page.Limit)
	assert.Equal(t, 0, body.Page.Offset)
	assert.Equal(t, 20, view.lastFilter.Limit)
}

// limit y offset del query llegan al filtro de la vista y a los metadatos.
func TestProductList_LimitOffsetExplicitos(t *testing.T) {
	view := &stubStockView{rows: stubRows(30)}
	app := buildProductApp(view, &stubProductRepo{})

	body := getProducts(t, app, "/products?limit=5&offset=10")
	assert.Len(t, body.Items, 5)
	assert.Equal(t, 5, body.Page.Limit)
	assert.Equal(t, 10, body.Page.Offset)
	assert.Equal(t, 5, view.lastFilter.Limit)
	assert.Equal(t, 10, view.lastFilter.Offset)
}

// Un límite por encima del tope se recorta a 100.
func TestProductList_LimiteConTope(t *testing.T) {
	view := &stubStockView{rows: stubRows(3)}
	app := buildProductApp(view, &stubProductRepo{})

	body := getProducts(t, app, "/products?limit=9999")
	assert.Equal(t, 100, body.Page.Limit)
	assert.Equal(t, 100, view.lastFilter.Limit)
}

// Un producto de otro tenant responde 404, igual que uno inexistente.
func TestProductGetByID_OtroTenantEs404(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", TenantID: "otro-tenant"}}
	app := buildProductApp(&stubStockView{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/products/p1", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleReader))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
