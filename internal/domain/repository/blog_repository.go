package repository

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// AuthorRepository Create/Update devuelven domain.ErrDuplicate si el nombre existe.
type AuthorRepository interface {
	CRUD[entity.Author]
}

// PostRepository Create/Update devuelven domain.ErrInvalidReference si el autor no existe.
type PostRepository interface {
	CRUD[entity.Post]
}

// CommentRepository comentarios; ListByPost filtra por post.
type CommentRepository interface {
	CRUD[entity.Comment]
	ListByPost(ctx context.Context, postID string, limit, offset int) ([]*entity.Comment, error)
}
