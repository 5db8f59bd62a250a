package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/practica-api/internal/infrastructure/sanitize"
)

func TestSanitize_EliminaScript(t *testing.T) {
	s := sanitize.NewHTMLSanitizer()

	out := s.Sanitize(`<p>hola</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>hola</p>", out)
}

func TestSanitize_EliminaEventos(t *testing.T) {
	s := sanitize.NewHTMLSanitizer()

	out := s.Sanitize(`<p onclick="x()">texto</p>`)
	assert.Equal(t, "<p>texto</p>", out)
}

func TestSanitize_TextoPlanoIntacto(t *testing.T) {
	s := sanitize.NewHTMLSanitizer()

	assert.Equal(t, "solo texto", s.Sanitize("solo texto"))
}

func TestSanitize_TextoConAmpersandSaleEscapado(t *testing.T) {
	s := sanitize.NewHTMLSanitizer()

	assert.Equal(t, "Tom &amp; Jerry &lt;3", s.Sanitize("Tom & Jerry <3"))
}

func TestSanitize_EnlaceJavascript(t *testing.T) {
	s := sanitize.NewHTMLSanitizer()

	out := s.Sanitize(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript")
}
