package entity

import "time"

// Warehouse bodega física, opcional en los movimientos de stock.
type Warehouse struct {
	ID        string
	TenantID  string
	Code      string
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
}
