package memory

import (
	"context"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.BookRepository        = (*BookRepository)(nil)
	_ repository.FeatureFlagRepository = (*FeatureFlagRepository)(nil)
)

// BookRepository libros en memoria; el id lo elige el cliente.
type BookRepository struct{ s *Store }

func (r *BookRepository) Create(_ context.Context, b *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&b.CreatedAt, &b.UpdatedAt)
	if !r.s.books.insert(b.ID, *b) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *BookRepository) GetByID(_ context.Context, id string) (*entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.books.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *BookRepository) List(_ context.Context, limit, offset int) ([]*entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.books.page(limit, offset, nil), nil
}

func (r *BookRepository) ListAll(_ context.Context) ([]*entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.books.page(0, 0, nil), nil
}

func (r *BookRepository) Update(_ context.Context, b *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.UpdatedAt = time.Now().UTC()
	if !r.s.books.put(b.ID, *b) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookRepository) Delete(_ context.Context, id string) (*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.books.remove(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// FeatureFlagRepository flags en memoria.
type FeatureFlagRepository struct{ s *Store }

func (r *FeatureFlagRepository) Get(_ context.Context, name string) (*entity.FeatureFlag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.flags[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (r *FeatureFlagRepository) List(_ context.Context) ([]*entity.FeatureFlag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.FeatureFlag, 0, len(r.s.flags))
	for _, name := range sortedKeys(r.s.flags) {
		f := r.s.flags[name]
		out = append(out, &f)
	}
	return out, nil
}

func (r *FeatureFlagRepository) SetEnabled(_ context.Context, name string, enabled bool) (*entity.FeatureFlag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.flags[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f.Enabled = enabled
	f.UpdatedAt = time.Now().UTC()
	r.s.flags[name] = f
	return &f, nil
}
