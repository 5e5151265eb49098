package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "ADMIN"
	RoleUser   = "USER"
	RoleReader = "READER"
)

// User usuario de la aplicación, siempre atado a un tenant.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string // ADMIN, USER, READER
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
