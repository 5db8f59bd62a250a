package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/blog"
	"github.com/jhoicas/practica-api/internal/application/library"
	"github.com/jhoicas/practica-api/internal/application/shop"
	"github.com/jhoicas/practica-api/internal/application/usecase"
	"github.com/jhoicas/practica-api/internal/infrastructure/catalog"
	"github.com/jhoicas/practica-api/internal/infrastructure/memory"
	"github.com/jhoicas/practica-api/internal/infrastructure/metrics"
	"github.com/jhoicas/practica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/practica-api/internal/infrastructure/sanitize"
	apphttp "github.com/jhoicas/practica-api/internal/interfaces/http"
	"github.com/jhoicas/practica-api/pkg/logger"
)

// testServer app completa sobre el store en memoria.
type testServer struct {
	t     *testing.T
	app   *fiber.App
	store *memory.Store
	reg   *prometheus.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithLimiter(t, apphttp.NewRateLimiter(0, 0))
}

func newTestServerWithLimiter(t *testing.T, limiter *apphttp.RateLimiter) *testServer {
	t.Helper()
	store := memory.NewStore()
	creds := newCredentials()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	app := apphttp.NewServer("practica-api-test", logger.Nop().Zerolog(), collector)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users(), store, creds),
		Credentials: creds,
		BlogUC:      blog.NewBlogUseCase(store.Authors(), store.Posts(), store.Comments(), sanitize.NewHTMLSanitizer()),
		TaskUC:      usecase.NewTaskUseCase(store.Tasks()),
		ShopUC: shop.NewShopUseCase(store.Categories(), store.Products(), store.Customers(), store.Orders(),
			pdf.NewReceiptGenerator("Tienda de prueba")),
		NoteUC:       usecase.NewNoteUseCase(store.Notes()),
		LibraryUC:    library.NewLibraryUseCase(store.Books(), catalog.NewXMLExporter()),
		Features:     usecase.NewFeatureService(store.FeatureFlags()),
		LoginLimiter: limiter,
		Metrics:      collector,
		Gatherer:     reg,
		ServiceName:  "practica-api-test",
	})
	return &testServer{t: t, app: app, store: store, reg: reg}
}

// do envía body como JSON (si no es nil) y devuelve status + cuerpo crudo.
func (s *testServer) do(method, path string, body any, token string) (int, []byte) {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.send(req)
}

func (s *testServer) send(req *http.Request) (int, []byte) {
	s.t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, raw
}

// decode atajo: do + json.Unmarshal en out.
func (s *testServer) decode(method, path string, body any, token string, out any) int {
	s.t.Helper()
	status, raw := s.do(method, path, body, token)
	if out != nil && len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
	}
	return status
}

// loginForm login con formulario OAuth2 (username/password).
func (s *testServer) loginForm(username, password string) (int, map[string]any) {
	s.t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, raw := s.send(req)
	var out map[string]any
	require.NoError(s.t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return status, out
}

// registerAndLogin registra un usuario y devuelve su id y token.
func (s *testServer) registerAndLogin(username, password string) (string, string) {
	s.t.Helper()
	var user map[string]any
	status := s.decode(http.MethodPost, "/auth/register_user", map[string]string{
		"username": username, "firstname": "Test", "lastname": "User", "passwd": password,
	}, "", &user)
	require.Equal(s.t, http.StatusOK, status, "registro de %s", username)

	status, tok := s.loginForm(username, password)
	require.Equal(s.t, http.StatusOK, status)
	return user["id"].(string), tok["access_token"].(string)
}
