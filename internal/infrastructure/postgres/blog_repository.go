package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.AuthorRepository  = (*AuthorRepo)(nil)
	_ repository.PostRepository    = (*PostRepo)(nil)
	_ repository.CommentRepository = (*CommentRepo)(nil)
)

// ── Autores ───────────────────────────────────────────────────────────────────

// AuthorRepo implementación de AuthorRepository.
type AuthorRepo struct {
	q Querier
}

// NewAuthorRepository construye el adaptador.
func NewAuthorRepository(q Querier) *AuthorRepo {
	return &AuthorRepo{q: q}
}

func scanAuthor(row pgx.Row) (*entity.Author, error) {
	var a entity.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuthorRepo) Create(ctx context.Context, a *entity.Author) error {
	if a.ID == "" {
		a.ID = entity.NewID()
	}
	stamp(&a.CreatedAt, &a.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO authors (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert author")
	}
	return nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id string) (*entity.Author, error) {
	a, err := scanAuthor(r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM authors WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get author")
	}
	return a, nil
}

func (r *AuthorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Author, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM authors
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list authors")
	}
	return collect(rows, scanAuthor)
}

func (r *AuthorRepo) Update(ctx context.Context, a *entity.Author) error {
	stamp(&a.CreatedAt, &a.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE authors SET name = $2, updated_at = $3 WHERE id = $1`, a.ID, a.Name, a.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update author")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete los posts y comentarios caen por ON DELETE CASCADE.
func (r *AuthorRepo) Delete(ctx context.Context, id string) (*entity.Author, error) {
	a, err := scanAuthor(r.q.QueryRow(ctx, `DELETE FROM authors WHERE id = $1
		RETURNING id, name, created_at, updated_at`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete author")
	}
	return a, nil
}

// ── Posts ─────────────────────────────────────────────────────────────────────

const postColumns = `id, title, content, author_id, created_at, updated_at`

// PostRepo implementación de PostRepository.
type PostRepo struct {
	q Querier
}

// NewPostRepository construye el adaptador.
func NewPostRepository(q Querier) *PostRepo {
	return &PostRepo{q: q}
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var p entity.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	if p.ID == "" {
		p.ID = entity.NewID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO posts (`+postColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Title, p.Content, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert post")
	}
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	p, err := scanPost(r.q.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get post")
	}
	return p, nil
}

func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	rows, err := r.q.Query(ctx, `SELECT `+postColumns+` FROM posts
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list posts")
	}
	return collect(rows, scanPost)
}

func (r *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	stamp(&p.CreatedAt, &p.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE posts SET title = $2, content = $3, author_id = $4, updated_at = $5 WHERE id = $1`,
		p.ID, p.Title, p.Content, p.AuthorID, p.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update post")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id string) (*entity.Post, error) {
	p, err := scanPost(r.q.QueryRow(ctx, `DELETE FROM posts WHERE id = $1 RETURNING `+postColumns, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete post")
	}
	return p, nil
}

// ── Comentarios ───────────────────────────────────────────────────────────────

const commentColumns = `id, content, post_id, created_at, updated_at`

// CommentRepo implementación de CommentRepository.
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador.
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	if err := row.Scan(&c.ID, &c.Content, &c.PostID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO comments (`+commentColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Content, c.PostID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert comment")
	}
	return nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := scanComment(r.q.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get comment")
	}
	return c, nil
}

func (r *CommentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Comment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+commentColumns+` FROM comments
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list comments")
	}
	return collect(rows, scanComment)
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID string, limit, offset int) ([]*entity.Comment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+commentColumns+` FROM comments WHERE post_id = $1
		ORDER BY created_at, id LIMIT $2 OFFSET $3`, postID, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list comments by post")
	}
	return collect(rows, scanComment)
}

func (r *CommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE comments SET content = $2, post_id = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Content, c.PostID, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update comment")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommentRepo) Delete(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := scanComment(r.q.QueryRow(ctx, `DELETE FROM comments WHERE id = $1 RETURNING `+commentColumns, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete comment")
	}
	return c, nil
}
