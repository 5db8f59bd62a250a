package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// LibraryUseCase libros con id de cliente y exportación del catálogo.
type LibraryUseCase struct {
	books    repository.BookRepository
	exporter CatalogExporter
}

// NewLibraryUseCase construye el caso de uso.
func NewLibraryUseCase(books repository.BookRepository, exporter CatalogExporter) *LibraryUseCase {
	return &LibraryUseCase{books: books, exporter: exporter}
}

// CreateBook un id repetido es domain.ErrDuplicate.
func (uc *LibraryUseCase) CreateBook(ctx context.Context, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	b := &entity.Book{
		ID:          strings.TrimSpace(in.ID),
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Publication: in.Publication,
		Year:        in.Year,
		Genre:       in.Genre,
	}
	if err := uc.books.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

func (uc *LibraryUseCase) GetBook(ctx context.Context, id string) (*dto.BookResponse, error) {
	b, err := uc.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

func (uc *LibraryUseCase) ListBooks(ctx context.Context, page dto.PageRequest) ([]dto.BookResponse, error) {
	page.DefaultPage()
	list, err := uc.books.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(b *entity.Book, _ int) dto.BookResponse { return *toBookResponse(b) }), nil
}

func (uc *LibraryUseCase) UpdateBook(ctx context.Context, id string, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	b, err := uc.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.Author != nil {
		b.Author = strings.TrimSpace(*in.Author)
	}
	if in.Publication != nil {
		b.Publication = *in.Publication
	}
	if in.Year != nil {
		b.Year = *in.Year
	}
	if in.Genre != nil {
		b.Genre = *in.Genre
	}
	if err := uc.books.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

func (uc *LibraryUseCase) DeleteBook(ctx context.Context, id string) (*dto.BookResponse, error) {
	b, err := uc.books.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// Catalog exporta todos los libros; el ETag solo cambia si cambia el contenido.
func (uc *LibraryUseCase) Catalog(ctx context.Context) (*Catalog, error) {
	books, err := uc.books.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := uc.exporter.Export(books)
	if err != nil {
		return nil, fmt.Errorf("exportar catálogo: %w", err)
	}
	return cat, nil
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Publication: b.Publication,
		Year:        b.Year,
		Genre:       b.Genre,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
