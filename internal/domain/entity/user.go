package entity

import "time"

// Roles asignables en el registro.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta registrada. PasswordHash nunca sale del backend.
type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Active       bool
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role es solo un nombre; la relación con User es muchos a muchos.
type Role struct {
	ID   string
	Name string
}
