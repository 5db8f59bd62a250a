// seed_library genera un script SQL idempotente para poblar la tabla books
// a partir de un catálogo XML (el mismo formato que sirve GET /library/catalog.xml).
// Acepta archivos en UTF-8 o ISO-8859-1.
//
// Uso: go run ./cmd/seed_library [ruta/catalog.xml] [salida.sql]
// Por defecto lee catalog.xml y escribe en la salida estándar.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogXML struct {
	Books []bookXML `xml:"book"`
}

type bookXML struct {
	ID          string `xml:"id,attr"`
	Title       string `xml:"title"`
	Author      string `xml:"author"`
	Publication string `xml:"publication"`
	Year        int    `xml:"year"`
	Genre       string `xml:"genre"`
}

func main() {
	xmlPath := "catalog.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	books, err := parseCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if len(os.Args) > 2 {
		file, err := os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}
	if err := writeSQL(out, books); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d libros\n", len(books))
}

// parseCatalog decodifica el catálogo; descarta libros sin id, título o autor
// y, con ids repetidos, conserva el primero.
func parseCatalog(r io.Reader) ([]bookXML, error) {
	var c catalogXML
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") || strings.EqualFold(charset, "latin1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(c.Books))
	books := make([]bookXML, 0, len(c.Books))
	for _, b := range c.Books {
		b.ID = strings.TrimSpace(b.ID)
		b.Title = strings.TrimSpace(b.Title)
		b.Author = strings.TrimSpace(b.Author)
		if b.ID == "" || b.Title == "" || b.Author == "" || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		books = append(books, b)
	}
	// Salida estable
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func writeSQL(w io.Writer, books []bookXML) error {
	var sb strings.Builder
	sb.WriteString("-- Catálogo de la biblioteca\n")
	sb.WriteString("-- Generado por cmd/seed_library\n\n")
	if len(books) == 0 {
		sb.WriteString("-- sin libros\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}
	sb.WriteString("INSERT INTO books (id, title, author, publication, year, genre) VALUES\n")
	for i, b := range books {
		fmt.Fprintf(&sb, "  ('%s', '%s', '%s', '%s', %d, '%s')",
			escapeSQL(b.ID), escapeSQL(b.Title), escapeSQL(b.Author),
			escapeSQL(b.Publication), b.Year, escapeSQL(b.Genre))
		if i < len(books)-1 {
			sb.WriteString(",\n")
		} else {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
