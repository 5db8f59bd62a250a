package entity

import "time"

// Book usa el identificador que envía el cliente (p. ej. un ISBN).
type Book struct {
	ID          string
	Title       string
	Author      string
	Publication string
	Year        int
	Genre       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
