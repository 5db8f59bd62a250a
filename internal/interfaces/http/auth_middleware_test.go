package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/practica-api/internal/application/auth"
	apphttp "github.com/jhoicas/practica-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "0190a1b2-0000-7000-8000-000000000001"
	testIssuer    = "practica-api-test"
)

func newCredentials() *auth.CredentialService {
	return auth.NewCredentialService(auth.CredentialConfig{
		Secret:     testJWTSecret,
		Issuer:     testIssuer,
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

// buildProtectedApp ruta GET /protected detrás de AuthMiddleware que devuelve la identidad.
func buildProtectedApp(creds *auth.CredentialService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(creds), func(c *fiber.Ctx) error {
		id, ok := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{
			"ok":       ok,
			"user_id":  apphttp.GetUserID(c),
			"username": id.Username,
			"roles":    id.Roles,
		})
	})
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func tokenFor(t *testing.T, creds *auth.CredentialService, username string) string {
	t.Helper()
	tok, err := creds.IssueToken(auth.Identity{UserID: testUserID, Username: username, Roles: []string{"user"}}, 0)
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaIdentidad(t *testing.T) {
	creds := newCredentials()
	resp := doProtected(t, buildProtectedApp(creds), tokenFor(t, creds, "alice"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, []interface{}{"user"}, body["roles"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(newCredentials()), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	creds := newCredentials()
	resp := doProtected(t, buildProtectedApp(creds), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(newCredentials()), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	old := newCredentials().WithClock(func() time.Time { return issued })
	tok := tokenFor(t, old, "alice")

	resp := doProtected(t, buildProtectedApp(newCredentials()), tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "un token vencido no autentica")
}

func TestAuthMiddleware_SecretDistinto_Retorna401(t *testing.T) {
	other := auth.NewCredentialService(auth.CredentialConfig{Secret: "otro-secret-completamente-distinto", Issuer: testIssuer})
	tok := tokenFor(t, other, "alice")

	resp := doProtected(t, buildProtectedApp(newCredentials()), tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
