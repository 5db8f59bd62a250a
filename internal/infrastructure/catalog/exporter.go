// Package catalog exporta los libros como documento XML canónico.
package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/practica-api/internal/application/library"
	"github.com/jhoicas/practica-api/internal/domain/entity"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Namespace del documento de catálogo.
const Namespace = "urn:practica-api:library:catalog:1"

var _ library.CatalogExporter = (*XMLExporter)(nil)

// XMLExporter construye el catálogo con etree y lo canonicaliza (C14N 1.0)
// para que el ETag dependa solo del contenido.
type XMLExporter struct{}

// NewXMLExporter crea el exportador.
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

// Export libros ordenados por id.
func (e *XMLExporter) Export(books []*entity.Book) (*library.Catalog, error) {
	sorted := slices.Clone(books)
	slices.SortFunc(sorted, func(a, b *entity.Book) int { return strings.Compare(a.ID, b.ID) })

	doc := etree.NewDocument()
	root := doc.CreateElement("catalog")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("count", strconv.Itoa(len(sorted)))
	for _, b := range sorted {
		el := root.CreateElement("book")
		el.CreateAttr("id", b.ID)
		el.CreateElement("title").SetText(b.Title)
		el.CreateElement("author").SetText(b.Author)
		if b.Publication != "" {
			el.CreateElement("publication").SetText(b.Publication)
		}
		if b.Year != 0 {
			el.CreateElement("year").SetText(strconv.Itoa(b.Year))
		}
		if b.Genre != "" {
			el.CreateElement("genre").SetText(b.Genre)
		}
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("catalog: serializar: %w", err)
	}
	canon, err := canonicalize(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	out := make([]byte, 0, len(header)+len(canon))
	out = append(out, header...)
	out = append(out, canon...)
	return &library.Catalog{XML: out, ETag: `"` + hex.EncodeToString(sum[:]) + `"`}, nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
