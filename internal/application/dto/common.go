package dto

import "github.com/jhoicas/practica-api/internal/domain"

// Límites de paginación.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados (?skip=&limit=).
type PageRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Limit es cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Fields solo en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// MessageResponse respuesta simple de texto.
type MessageResponse struct {
	Message string `json:"message"`
}
