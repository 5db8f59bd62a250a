package library

import "github.com/jhoicas/practica-api/internal/domain/entity"

// Catalog documento exportado y su ETag fuerte.
type Catalog struct {
	XML  []byte
	ETag string
}

// CatalogExporter serializa los libros en un documento canónico.
type CatalogExporter interface {
	Export(books []*entity.Book) (*Catalog, error)
}
