package repository

import (
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByTenantAndName(tenantID, name string) (*entity.Supplier, error)
	ListByTenant(tenantID string, limit int) ([]*entity.Supplier, error)
}
