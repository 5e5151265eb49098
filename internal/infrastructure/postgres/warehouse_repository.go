package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, tenant_id, code, name, address, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.TenantID, warehouse.Code, warehouse.Name,
		warehouse.Address, warehouse.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByTenantAndCode busca una bodega por código dentro del tenant.
func (r *WarehouseRepo) GetByTenantAndCode(tenantID, code string) (*entity.Warehouse, error) {
	query := `
		SELECT id, tenant_id, code, name, address, is_active, created_at
		FROM warehouses WHERE tenant_id = $1 AND code = $2`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, tenantID, code).Scan(
		&w.ID, &w.TenantID, &w.Code, &w.Name, &w.Address, &w.IsActive, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListByTenant lista las bodegas del tenant ordenadas por código.
func (r *WarehouseRepo) ListByTenant(tenantID string) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, tenant_id, code, name, address, is_active, created_at
		FROM warehouses WHERE tenant_id = $1 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.TenantID, &w.Code, &w.Name, &w.Address, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, &w)
	}
	return warehouses, rows.Err()
}
