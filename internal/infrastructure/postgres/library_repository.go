package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.BookRepository        = (*BookRepo)(nil)
	_ repository.FeatureFlagRepository = (*FeatureFlagRepo)(nil)
)

const bookColumns = `id, title, author, publication, year, genre, created_at, updated_at`

// BookRepo libros; el id es el que envía el cliente.
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador.
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	var b entity.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Publication, &b.Year, &b.Genre, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create un id repetido lo rechaza la PK (domain.ErrDuplicate).
func (r *BookRepo) Create(ctx context.Context, b *entity.Book) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO books (`+bookColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.Title, b.Author, b.Publication, b.Year, b.Genre, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert book")
	}
	return nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	b, err := scanBook(r.q.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get book")
	}
	return b, nil
}

func (r *BookRepo) List(ctx context.Context, limit, offset int) ([]*entity.Book, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bookColumns+` FROM books
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list books")
	}
	return collect(rows, scanBook)
}

func (r *BookRepo) ListAll(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list all books")
	}
	return collect(rows, scanBook)
}

func (r *BookRepo) Update(ctx context.Context, b *entity.Book) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	tag, err := r.q.Exec(ctx, `
		UPDATE books SET title = $2, author = $3, publication = $4, year = $5, genre = $6, updated_at = $7
		WHERE id = $1`,
		b.ID, b.Title, b.Author, b.Publication, b.Year, b.Genre, b.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update book")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) (*entity.Book, error) {
	b, err := scanBook(r.q.QueryRow(ctx, `DELETE FROM books WHERE id = $1 RETURNING `+bookColumns, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete book")
	}
	return b, nil
}

// FeatureFlagRepo flags sembrados por la migración inicial.
type FeatureFlagRepo struct {
	q Querier
}

// NewFeatureFlagRepository construye el adaptador.
func NewFeatureFlagRepository(q Querier) *FeatureFlagRepo {
	return &FeatureFlagRepo{q: q}
}

func scanFlag(row pgx.Row) (*entity.FeatureFlag, error) {
	var f entity.FeatureFlag
	if err := row.Scan(&f.Name, &f.Enabled, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeatureFlagRepo) Get(ctx context.Context, name string) (*entity.FeatureFlag, error) {
	f, err := scanFlag(r.q.QueryRow(ctx, `SELECT name, enabled, updated_at FROM feature_flags WHERE name = $1`, name))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get feature flag")
	}
	return f, nil
}

func (r *FeatureFlagRepo) List(ctx context.Context) ([]*entity.FeatureFlag, error) {
	rows, err := r.q.Query(ctx, `SELECT name, enabled, updated_at FROM feature_flags ORDER BY name`)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list feature flags")
	}
	return collect(rows, scanFlag)
}

func (r *FeatureFlagRepo) SetEnabled(ctx context.Context, name string, enabled bool) (*entity.FeatureFlag, error) {
	f, err := scanFlag(r.q.QueryRow(ctx, `
		UPDATE feature_flags SET enabled = $2, updated_at = now()
		WHERE name = $1
		RETURNING name, enabled, updated_at`, name, enabled))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "set feature flag")
	}
	return f, nil
}
