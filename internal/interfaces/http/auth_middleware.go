package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/dto"
)

// LocalIdentity key de c.Locals donde queda la identidad del token.
const LocalIdentity = "identity"

// tokenValidator lo implementa *auth.CredentialService.
type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// AuthMiddleware valida el Bearer Token y deja la identidad en c.Locals.
func AuthMiddleware(tokens tokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c, "MISSING_TOKEN", "token vacío")
		}
		id, err := tokens.ValidateToken(tokenString)
		if err != nil {
			return unauthenticated(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx, code, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// GetIdentity devuelve la identidad del contexto (después de AuthMiddleware).
func GetIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(auth.Identity)
	return id, ok
}

// GetUserID atajo para el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.UserID
}
