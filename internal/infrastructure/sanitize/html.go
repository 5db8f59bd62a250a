// Package sanitize limpia el HTML que envían los usuarios del blog.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer política de lista blanca para posts y comentarios.
// Es seguro para uso concurrente.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer permite formato básico y enlaces absolutos; script, style,
// iframe y atributos on* se eliminan.
func NewHTMLSanitizer() *HTMLSanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em", "h2", "h3",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("https", "http", "mailto")
	p.AllowRelativeURLs(false)
	p.RequireNoFollowOnLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return &HTMLSanitizer{policy: p}
}

// Sanitize devuelve el HTML permitido; el texto sale escapado (& pasa a &amp;),
// por eso solo se aplica al renderizar, nunca al guardar.
func (s *HTMLSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
