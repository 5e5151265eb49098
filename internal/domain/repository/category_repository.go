package repository

import (
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByTenantAndName(tenantID, name string) (*entity.Category, error)
	ListByTenant(tenantID string) ([]*entity.Category, error)
}
