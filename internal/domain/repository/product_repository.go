package repository

import (
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByTenantAndSKU(tenantID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error)
}
