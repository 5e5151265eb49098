package query

import (
	"context"
	"strings"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/nlp"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// searchTiers estrategias de búsqueda por nombre, en orden: coincidencia
// exacta, luego prefijo, luego substring. Se prueban en secuencia y gana la
// primera que devuelve filas; solo la última lleva límite.
var searchTiers = []struct {
	mode  string
	limit int
}{
	{repository.MatchExact, 0},
	{repository.MatchPrefix, 0},
	{repository.MatchContains, searchContainsCap},
}

// handleSearchProduct busca un producto concreto o el extremo ("el más caro").
// Si hay sort_order la consulta es superlativa y el término de búsqueda se
// ignora: la intención de ordenar tiene prioridad.
func (uc *UseCase) handleSearchProduct(ctx context.Context, tenantID string, p nlp.SearchParams) (*dto.ChatResponse, error) {
	if p.SortOrder != "" && p.SortField != "" {
		return uc.superlativeSearch(ctx, tenantID, p)
	}

	if p.Term == "" {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgWhichProduct)}, nil
	}

	var rows []repository.StockRow
	for _, tier := range searchTiers {
		var err error
		rows, err = uc.view.ListStock(ctx, tenantID, repository.StockFilter{
			Name:     p.Term,
			NameMode: tier.mode,
			Limit:    tier.limit,
		})
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			break
		}
	}

	if len(rows) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.F(msgSearchNotFound, p.Term)}, nil
	}

	var b strings.Builder
	b.WriteString(uc.msgs.F(msgSearchResults, p.Term))
	shown := rows
	if len(shown) > searchDisplayCap {
		shown = shown[:searchDisplayCap]
	}
	for _, row := range shown {
		via := ""
		if row.SupplierName != nil {
			via = uc.msgs.F(msgViaSupplier, *row.SupplierName)
		}
		icon := "🔴"
		if row.StockLevel > 10 {
			icon = "🟢"
		}
		b.WriteString(uc.msgs.F(msgSearchRow, icon, row.Product.Name, row.CategoryName, via, row.StockLevel))
	}
	if len(rows) > searchDisplayCap {
		b.WriteString(uc.msgs.F(msgAndOthers, len(rows)-searchDisplayCap))
	}
	return &dto.ChatResponse{Text: b.String()}, nil
}

// superlativeSearch ordena la vista por precio o stock y toma exactamente una
// fila: el producto extremo.
func (uc *UseCase) superlativeSearch(ctx context.Context, tenantID string, p nlp.SearchParams) (*dto.ChatResponse, error) {
	rows, err := uc.view.ListStock(ctx, tenantID, repository.StockFilter{
		SortField: p.SortField,
		SortOrder: p.SortOrder,
		Limit:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &dto.ChatResponse{Text: uc.msgs.Get(msgNoProducts) + "."}, nil
	}

	row := rows[0]
	via := ""
	if row.SupplierName != nil {
		via = uc.msgs.F(msgViaSupplier, *row.SupplierName)
	}
	priceTail := ""
	if row.Product.UnitPrice != nil {
		priceTail = uc.msgs.F(msgSuperlativePrice, row.Product.UnitPrice.StringFixed(2))
	}
	return &dto.ChatResponse{
		Text: uc.msgs.F(msgSuperlative,
			uc.superlativeWord(p.SortField, p.SortOrder),
			row.Product.Name, row.CategoryName, via, row.StockLevel, priceTail),
	}, nil
}

// superlativeWord frase superlativa según campo y dirección de ordenamiento.
func (uc *UseCase) superlativeWord(sortField, sortOrder string) string {
	desc := sortOrder == repository.OrderDesc
	if sortField == repository.SortByPrice {
		if desc {
			return uc.msgs.Get(msgMostExpensive)
		}
		return uc.msgs.Get(msgLeastExpensive)
	}
	if desc {
		return uc.msgs.Get(msgMostAvailable)
	}
	return uc.msgs.Get(msgLeastAvailable)
}
