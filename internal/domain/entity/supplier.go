package entity

import "time"

// Supplier proveedor, opcional en los productos.
type Supplier struct {
	ID           string
	TenantID     string
	Name         string
	ContactEmail string
	ContactPhone string
	LeadTimeDays int
	IsActive     bool
	CreatedAt    time.Time
}
