package repository

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// NoteRepository todas las lecturas y escrituras se filtran por dueño:
// una nota de otro usuario se comporta como inexistente.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByOwner(ctx context.Context, ownerID, id string) (*entity.Note, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	DeleteByOwner(ctx context.Context, ownerID, id string) (*entity.Note, error)
}
