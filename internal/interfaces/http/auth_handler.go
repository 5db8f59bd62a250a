package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// authRecorder lo implementa *metrics.Collector.
type authRecorder interface {
	RecordLogin(result string)
	RecordRegistration()
}

// AuthHandler maneja registro, login, perfil y consulta de usuarios.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics authRecorder
}

// NewAuthHandler construye el handler de auth. metrics puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, metrics authRecorder) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: metrics}
}

// RegisterUser godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, firstname, lastname, passwd"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/register_user [post]
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	return h.register(c, entity.RoleUser)
}

// RegisterAdmin godoc
// @Summary      Registrar administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, firstname, lastname, passwd"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/register_admin [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	return h.register(c, entity.RoleAdmin)
}

func (h *AuthHandler) register(c *fiber.Ctx, role string) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.RegisterUser(c.UserContext(), in, role)
	if err != nil {
		return writeError(c, err)
	}
	if h.metrics != nil {
		h.metrics.RecordRegistration()
	}
	return c.JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "username"
// @Param        password  formData  string  true  "password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if h.metrics != nil {
		h.metrics.RecordLogin(loginResult(err))
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "invalid"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	}
	return "error"
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	out, err := h.uc.Me(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	var in dto.UpdateProfileRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.UserResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListUsers(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Obtener usuario por ID
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/users/{id} [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetUserByUsername busca por username (/auth/users_n/:username).
func (h *AuthHandler) GetUserByUsername(c *fiber.Ctx) error {
	out, err := h.uc.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
