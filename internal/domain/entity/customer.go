package entity

import "time"

// Customer representa un cliente de la tienda. Email es único.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
