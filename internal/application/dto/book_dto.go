package dto

import "time"

// CreateBookRequest el id lo elige el cliente.
type CreateBookRequest struct {
	ID          string `json:"id" validate:"required,notblank,max=64,printascii"`
	Title       string `json:"title" validate:"required,notblank,max=300"`
	Author      string `json:"author" validate:"required,notblank,max=200"`
	Publication string `json:"publication" validate:"max=200"`
	Year        int    `json:"year" validate:"omitempty,min=0,max=9999"`
	Genre       string `json:"genre" validate:"max=100"`
}

// UpdateBookRequest actualización parcial; el id no cambia.
type UpdateBookRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=300"`
	Author      *string `json:"author" validate:"omitempty,notblank,max=200"`
	Publication *string `json:"publication" validate:"omitempty,max=200"`
	Year        *int    `json:"year" validate:"omitempty,min=0,max=9999"`
	Genre       *string `json:"genre" validate:"omitempty,max=100"`
}

// BookResponse salida de un libro.
type BookResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publication string    `json:"publication"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
