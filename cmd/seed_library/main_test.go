package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog_Latin1(t *testing.T) {
	raw := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<catalog><book id=\"2\"><title>Espa\xf1a</title><author>Ana</author><year>2001</year></book></catalog>"

	books, err := parseCatalog(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "España", books[0].Title)
	assert.Equal(t, 2001, books[0].Year)
}

func TestParseCatalog_DescartaIncompletosYDuplicados(t *testing.T) {
	raw := `<catalog xmlns="urn:practica-api:library:catalog:1">
		<book id="b"><title>B</title><author>X</author></book>
		<book id="a"><title>A</title><author>Y</author></book>
		<book id="b"><title>Otro</title><author>Z</author></book>
		<book id="c"><title>Sin autor</title></book>
	</catalog>`

	books, err := parseCatalog(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "a", books[0].ID)
	assert.Equal(t, "B", books[1].Title, "gana el primero")
}

func TestWriteSQL_Idempotente(t *testing.T) {
	var buf bytes.Buffer
	err := writeSQL(&buf, []bookXML{{ID: "1", Title: "L'Étranger", Author: "Camus", Year: 1942}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "('1', 'L''Étranger', 'Camus', '', 1942, '')")
	assert.True(t, strings.HasSuffix(out, "ON CONFLICT (id) DO NOTHING;\n"))
}

func TestWriteSQL_SinLibros(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, nil))
	assert.NotContains(t, buf.String(), "INSERT")
}
