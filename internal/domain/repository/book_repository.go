package repository

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// BookRepository Create devuelve domain.ErrDuplicate si el id ya existe.
type BookRepository interface {
	CRUD[entity.Book]
	ListAll(ctx context.Context) ([]*entity.Book, error)
}
