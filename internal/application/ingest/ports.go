package ingest

import (
	"context"

	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// Repos conjunto de repositorios ligados a una misma transacción.
type Repos struct {
	Categories repository.CategoryRepository
	Suppliers  repository.SupplierRepository
	Products   repository.ProductRepository
	Movements  repository.StockMovementRepository
}

// TxRunner ejecuta fn dentro de una transacción: los repositorios recibidos
// comparten la misma tx y todo se confirma o revierte en bloque. Una
// importación parcial no debe dejar productos sin su movimiento inicial.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
