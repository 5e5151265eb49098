package entity

import "time"

// DefaultCategoryName es la categoría que crea la ingesta cuando una fila
// no trae categoría: ningún producto queda sin categoría.
const DefaultCategoryName = "General"

// Category categoría de productos (jerárquica opcional), única por (tenant, parent, name).
type Category struct {
	ID        string
	TenantID  string
	ParentID  string // vacío si es raíz
	Name      string
	Level     int
	CreatedAt time.Time
}
