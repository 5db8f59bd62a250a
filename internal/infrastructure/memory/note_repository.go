package memory

import (
	"context"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepository)(nil)

// NoteRepository notas en memoria filtradas por dueño.
type NoteRepository struct{ s *Store }

func (r *NoteRepository) Create(_ context.Context, n *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n.ID == "" {
		n.ID = entity.NewID()
	}
	stamp(&n.CreatedAt, &n.UpdatedAt)
	if !r.s.notes.insert(n.ID, *n) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *NoteRepository) GetByOwner(_ context.Context, ownerID, id string) (*entity.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.notes.get(id)
	if !ok || n.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (r *NoteRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.notes.page(limit, offset, func(n entity.Note) bool { return n.OwnerID == ownerID }), nil
}

func (r *NoteRepository) Update(_ context.Context, n *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.notes.get(n.ID)
	if !ok || cur.OwnerID != n.OwnerID {
		return domain.ErrNotFound
	}
	n.UpdatedAt = time.Now().UTC()
	r.s.notes.put(n.ID, *n)
	return nil
}

func (r *NoteRepository) DeleteByOwner(_ context.Context, ownerID, id string) (*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.notes.get(id)
	if !ok || cur.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	r.s.notes.remove(id)
	return &cur, nil
}
