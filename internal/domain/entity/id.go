package entity

import "github.com/google/uuid"

// NewID genera un identificador UUIDv7 (ordenable por tiempo de creación).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
