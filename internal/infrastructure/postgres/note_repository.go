package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

const noteColumns = `id, title, content, owner_id, created_at, updated_at`

// NoteRepo todas las consultas llevan owner_id en el WHERE.
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	var n entity.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	if n.ID == "" {
		n.ID = entity.NewID()
	}
	stamp(&n.CreatedAt, &n.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO notes (`+noteColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.Title, n.Content, n.OwnerID, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert note")
	}
	return nil
}

func (r *NoteRepo) GetByOwner(ctx context.Context, ownerID, id string) (*entity.Note, error) {
	n, err := scanNote(r.q.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get note")
	}
	return n, nil
}

func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Note, error) {
	rows, err := r.q.Query(ctx, `SELECT `+noteColumns+` FROM notes WHERE owner_id = $1
		ORDER BY created_at, id LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list notes")
	}
	return collect(rows, scanNote)
}

func (r *NoteRepo) Update(ctx context.Context, n *entity.Note) error {
	stamp(&n.CreatedAt, &n.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE notes SET title = $3, content = $4, updated_at = $5 WHERE id = $1 AND owner_id = $2`,
		n.ID, n.OwnerID, n.Title, n.Content, n.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update note")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NoteRepo) DeleteByOwner(ctx context.Context, ownerID, id string) (*entity.Note, error) {
	n, err := scanNote(r.q.QueryRow(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2 RETURNING `+noteColumns, id, ownerID))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete note")
	}
	return n, nil
}
