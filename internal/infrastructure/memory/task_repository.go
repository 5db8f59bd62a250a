package memory

import (
	"context"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepository)(nil)

// TaskRepository tareas en memoria; OwnerID no se comprueba.
type TaskRepository struct{ s *Store }

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == "" {
		t.ID = entity.NewID()
	}
	stamp(&t.CreatedAt, &t.UpdatedAt)
	if !r.s.tasks.insert(t.ID, *t) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tasks.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *TaskRepository) List(_ context.Context, limit, offset int) ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.tasks.page(limit, offset, nil), nil
}

func (r *TaskRepository) Update(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.UpdatedAt = time.Now().UTC()
	if !r.s.tasks.put(t.ID, *t) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks.remove(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}
