package memory

import (
	"context"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.AuthorRepository  = (*AuthorRepository)(nil)
	_ repository.PostRepository    = (*PostRepository)(nil)
	_ repository.CommentRepository = (*CommentRepository)(nil)
)

// AuthorRepository autores en memoria.
type AuthorRepository struct{ s *Store }

func (r *AuthorRepository) Create(_ context.Context, a *entity.Author) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.authors.exists(func(x entity.Author) bool { return x.Name == a.Name }) {
		return domain.ErrDuplicate
	}
	if a.ID == "" {
		a.ID = entity.NewID()
	}
	stamp(&a.CreatedAt, &a.UpdatedAt)
	if !r.s.authors.insert(a.ID, *a) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *AuthorRepository) GetByID(_ context.Context, id string) (*entity.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.authors.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *AuthorRepository) List(_ context.Context, limit, offset int) ([]*entity.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.authors.page(limit, offset, nil), nil
}

func (r *AuthorRepository) Update(_ context.Context, a *entity.Author) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.authors.get(a.ID); !ok {
		return domain.ErrNotFound
	}
	if r.s.authors.exists(func(x entity.Author) bool { return x.Name == a.Name && x.ID != a.ID }) {
		return domain.ErrDuplicate
	}
	a.UpdatedAt = time.Now().UTC()
	r.s.authors.put(a.ID, *a)
	return nil
}

// Delete borra el autor con sus posts y los comentarios de esos posts.
func (r *AuthorRepository) Delete(_ context.Context, id string) (*entity.Author, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.authors.remove(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, p := range r.s.posts.page(0, 0, func(p entity.Post) bool { return p.AuthorID == id }) {
		r.s.deletePostLocked(p.ID)
	}
	return &a, nil
}

// PostRepository posts en memoria.
type PostRepository struct{ s *Store }

func (r *PostRepository) Create(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.authors.get(p.AuthorID); !ok {
		return domain.ErrInvalidReference
	}
	if p.ID == "" {
		p.ID = entity.NewID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	if !r.s.posts.insert(p.ID, *p) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.posts.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepository) List(_ context.Context, limit, offset int) ([]*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.posts.page(limit, offset, nil), nil
}

func (r *PostRepository) Update(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts.get(p.ID); !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.authors.get(p.AuthorID); !ok {
		return domain.ErrInvalidReference
	}
	p.UpdatedAt = time.Now().UTC()
	r.s.posts.put(p.ID, *p)
	return nil
}

func (r *PostRepository) Delete(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.deletePostLocked(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *Store) deletePostLocked(id string) (entity.Post, bool) {
	p, ok := s.posts.remove(id)
	if !ok {
		return p, false
	}
	for _, c := range s.comments.page(0, 0, func(c entity.Comment) bool { return c.PostID == id }) {
		s.comments.remove(c.ID)
	}
	return p, true
}

// CommentRepository comentarios en memoria.
type CommentRepository struct{ s *Store }

func (r *CommentRepository) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts.get(c.PostID); !ok {
		return domain.ErrInvalidReference
	}
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	if !r.s.comments.insert(c.ID, *c) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.comments.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CommentRepository) List(_ context.Context, limit, offset int) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.comments.page(limit, offset, nil), nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID string, limit, offset int) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.comments.page(limit, offset, func(c entity.Comment) bool { return c.PostID == postID }), nil
}

func (r *CommentRepository) Update(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments.get(c.ID); !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.posts.get(c.PostID); !ok {
		return domain.ErrInvalidReference
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.comments.put(c.ID, *c)
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments.remove(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}
