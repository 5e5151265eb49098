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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, tenant_id, name, contact_email, contact_phone, lead_time_days, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.TenantID, supplier.Name, supplier.ContactEmail,
		supplier.ContactPhone, supplier.LeadTimeDays, supplier.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByTenantAndName busca un proveedor por nombre exacto dentro del tenant.
func (r *SupplierRepo) GetByTenantAndName(tenantID, name string) (*entity.Supplier, error) {
	query := `
		SELECT id, tenant_id, name, contact_email, contact_phone, lead_time_days, is_active, created_at
		FROM suppliers WHERE tenant_id = $1 AND name = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, tenantID, name).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.ContactEmail, &s.ContactPhone,
		&s.LeadTimeDays, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByTenant lista los proveedores del tenant ordenados por nombre.
func (r *SupplierRepo) ListByTenant(tenantID string, limit int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, tenant_id, name, contact_email, contact_phone, lead_time_days, is_active, created_at
		FROM suppliers WHERE tenant_id = $1 ORDER BY name LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.ContactEmail, &s.ContactPhone,
			&s.LeadTimeDays, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}
