package entity

import "time"

// Roles de usuario del punto de venta.
const (
	RoleAdmin  = "admin"  // gestiona catálogo y usuarios
	RoleCajero = "cajero" // opera la caja (ventas y consultas)
)

// User representa un usuario del sistema (login por email).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
