package dto

import "time"

// NoteRequest entrada de nota; el dueño sale del token.
type NoteRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=200"`
	Content string `json:"content" validate:"max=10000"`
}

// UpdateNoteRequest actualización parcial.
type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,notblank,max=200"`
	Content *string `json:"content" validate:"omitempty,max=10000"`
}

// NoteResponse salida de una nota.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
