package dto

import "time"

// AuthorRequest crea o renombra un autor.
type AuthorRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// AuthorResponse salida de un autor.
type AuthorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest AuthorID puede venir también en ?author_id=.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,notblank,max=200"`
	Content  string `json:"content" validate:"required,notblank,max=20000"`
	AuthorID string `json:"author_id" validate:"required"`
}

// UpdatePostRequest actualización parcial.
type UpdatePostRequest struct {
	Title    *string `json:"title" validate:"omitempty,notblank,max=200"`
	Content  *string `json:"content" validate:"omitempty,notblank,max=20000"`
	AuthorID *string `json:"author_id" validate:"omitempty,notblank"`
}

// PostResponse salida de un post.
// Content es el texto tal como se envió; ContentHTML es su versión saneada.
type PostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentRequest contenido de un comentario.
type CommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=5000"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	PostID      string    `json:"post_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
