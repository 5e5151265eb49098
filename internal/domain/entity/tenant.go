package entity

import "time"

// Tenant es la frontera de aislamiento: todo dato de negocio pertenece a un tenant
// y ninguna consulta puede cruzar esa frontera.
type Tenant struct {
	ID          string
	CompanyName string
	Plan        string // STARTER, PROFESSIONAL, ENTERPRISE
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
