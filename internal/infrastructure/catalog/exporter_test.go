package catalog_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/infrastructure/catalog"
)

func books() []*entity.Book {
	return []*entity.Book{
		{ID: "978-2", Title: "Rayuela", Author: "Julio Cortázar", Year: 1963, Genre: "novela"},
		{ID: "978-1", Title: "Ficciones", Author: "Jorge Luis Borges", Publication: "Sur", Year: 1944},
	}
}

func TestExport_ETagIndependienteDelOrden(t *testing.T) {
	e := catalog.NewXMLExporter()
	b := books()

	a, err := e.Export(b)
	require.NoError(t, err)
	c, err := e.Export([]*entity.Book{b[1], b[0]})
	require.NoError(t, err)

	assert.Equal(t, a.ETag, c.ETag)
	assert.Equal(t, a.XML, c.XML)
}

func TestExport_ETagCambiaConElContenido(t *testing.T) {
	e := catalog.NewXMLExporter()
	b := books()

	a, err := e.Export(b)
	require.NoError(t, err)
	b[0].Title = "Rayuela (2a ed.)"
	c, err := e.Export(b)
	require.NoError(t, err)

	assert.NotEqual(t, a.ETag, c.ETag)
}

func TestExport_DocumentoLegible(t *testing.T) {
	cat, err := catalog.NewXMLExporter().Export(books())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(cat.XML))
	root := doc.SelectElement("catalog")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))

	list := root.SelectElements("book")
	require.Len(t, list, 2)
	assert.Equal(t, "978-1", list[0].SelectAttrValue("id", ""))
	assert.Equal(t, "Ficciones", list[0].SelectElement("title").Text())
	assert.Nil(t, list[1].SelectElement("publication"))
}

func TestExport_CatalogoVacio(t *testing.T) {
	cat, err := catalog.NewXMLExporter().Export(nil)
	require.NoError(t, err)
	assert.Contains(t, string(cat.XML), `count="0"`)
	assert.Len(t, cat.ETag, 66)
}
