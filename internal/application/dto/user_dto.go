package dto

import "time"

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,notblank,min=3,max=50"`
	FirstName string `json:"firstname" validate:"required,notblank,max=100"`
	LastName  string `json:"lastname" validate:"required,notblank,max=100"`
	Password  string `json:"passwd" validate:"required,min=4,max=256"`
}

// LoginRequest credenciales; llega como formulario o JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// UpdateProfileRequest campos opcionales del perfil propio.
type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,notblank,min=3,max=50"`
	FirstName *string `json:"firstname" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"lastname" validate:"omitempty,notblank,max=100"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Active    bool      `json:"active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
