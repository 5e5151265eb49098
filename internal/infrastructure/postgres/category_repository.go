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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, tenant_id, parent_id, name, level, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.ParentID, category.Name, category.Level,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByTenantAndName busca una categoría por nombre exacto dentro del tenant.
func (r *CategoryRepo) GetByTenantAndName(tenantID, name string) (*entity.Category, error) {
	query := `
		SELECT id, tenant_id, COALESCE(parent_id, ''), name, level, created_at
		FROM categories WHERE tenant_id = $1 AND name = $2`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, tenantID, name).Scan(
		&c.ID, &c.TenantID, &c.ParentID, &c.Name, &c.Level, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByTenant lista las categorías del tenant ordenadas por nombre.
func (r *CategoryRepo) ListByTenant(tenantID string) ([]*entity.Category, error) {
	query := `
		SELECT id, tenant_id, COALESCE(parent_id, ''), name, level, created_at
		FROM categories WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.TenantID, &c.ParentID, &c.Name, &c.Level, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
