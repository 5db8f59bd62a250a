package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/practica-api/internal/interfaces/http"
)

type jsonObj = map[string]any

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_EscenarioAlice(t *testing.T) {
	s := newTestServer(t)

	var user jsonObj
	status := s.decode(http.MethodPost, "/auth/register_user", jsonObj{
		"username": "alice", "firstname": "Alice", "lastname": "Liddell", "passwd": "s3cret",
	}, "", &user)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, []any{"user"}, user["roles"])
	assert.NotContains(t, user, "passwd")
	assert.NotContains(t, user, "hashed_password")

	var dup jsonObj
	status = s.decode(http.MethodPost, "/auth/register_user", jsonObj{
		"username": "alice", "firstname": "Otra", "lastname": "Alice", "passwd": "otra",
	}, "", &dup)
	assert.Equal(t, http.StatusBadRequest, status, "el segundo registro con el mismo username falla")
	assert.Equal(t, "USERNAME_EXISTS", dup["code"])

	status, tok := s.loginForm("alice", "s3cret")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", tok["token_type"])
	assert.NotEmpty(t, tok["access_token"])
	assert.EqualValues(t, 3600, tok["expires_in"])

	status, _ = s.loginForm("alice", "incorrecta")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.loginForm("nadie", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, status)

	var me jsonObj
	status = s.decode(http.MethodGet, "/auth/me", nil, tok["access_token"].(string), &me)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user["id"], me["id"])

	// tarea para un dueño que no existe: se acepta
	var task jsonObj
	status = s.decode(http.MethodPost, "/task/tasks/usuario-inexistente", jsonObj{"title": "comprar pan"}, tok["access_token"].(string), &task)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "usuario-inexistente", task["owner_id"])
}

func TestAuth_LoginAceptaJSON(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin("bob", "clave123")

	var tok jsonObj
	status := s.decode(http.MethodPost, "/auth/login", jsonObj{"username": "bob", "password": "clave123"}, "", &tok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", tok["token_type"])
}

func TestAuth_RegisterAdminAsignaRol(t *testing.T) {
	s := newTestServer(t)

	var user jsonObj
	status := s.decode(http.MethodPost, "/auth/register_admin", jsonObj{
		"username": "root", "firstname": "Root", "lastname": "Admin", "passwd": "s3cret",
	}, "", &user)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"admin"}, user["roles"])
}

func TestAuth_RegistroInvalidoDevuelveCampos(t *testing.T) {
	s := newTestServer(t)

	var body jsonObj
	status := s.decode(http.MethodPost, "/auth/register_user", jsonObj{"username": "a"}, "", &body)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	fields := body["fields"].([]any)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"username", "firstname", "lastname", "passwd"}, names, "los campos usan el nombre json")
}

func TestAuth_UsernameConGuionBajoYPunto(t *testing.T) {
	s := newTestServer(t)

	for _, name := range []string{"john_doe", "john.doe"} {
		var user jsonObj
		status := s.decode(http.MethodPost, "/auth/register_user", jsonObj{
			"username": name, "firstname": "John", "lastname": "Doe", "passwd": "s3cret",
		}, "", &user)
		require.Equal(t, http.StatusOK, status, name)
		assert.Equal(t, name, user["username"])
	}

	status, _ := s.do(http.MethodPost, "/auth/register_user", jsonObj{
		"username": "   ", "firstname": "John", "lastname": "Doe", "passwd": "s3cret",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status, "username en blanco")

	var body jsonObj
	status = s.decode(http.MethodPost, "/auth/register_user", jsonObj{
		"username": "jane", "firstname": " ", "lastname": "Doe", "passwd": "s3cret",
	}, "", &body)
	assert.Equal(t, http.StatusBadRequest, status, "nombre en blanco")
	assert.Equal(t, "firstname", body["fields"].([]any)[0].(map[string]any)["field"])
}

func TestAuth_PerfilYUsuarios(t *testing.T) {
	s := newTestServer(t)
	id, tok := s.registerAndLogin("carol", "s3cret")

	var updated jsonObj
	status := s.decode(http.MethodPut, "/auth/me", jsonObj{"firstname": "Carolina"}, tok, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Carolina", updated["firstname"])
	assert.Equal(t, "carol", updated["username"])

	var byID, byName jsonObj
	assert.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/auth/users/"+id, nil, tok, &byID))
	assert.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/auth/users_n/carol", nil, tok, &byName))
	assert.Equal(t, byID["id"], byName["id"])

	var list []jsonObj
	assert.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/auth/users", nil, tok, &list))
	assert.Len(t, list, 1)

	status, _ = s.do(http.MethodGet, "/auth/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.do(http.MethodGet, "/auth/users/no-existe", nil, tok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAuth_LoginConLimiteDeTasa(t *testing.T) {
	s := newTestServerWithLimiter(t, apphttp.NewRateLimiter(1, 1))

	status, _ := s.loginForm("nadie", "x")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := s.loginForm("nadie", "x")
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Blog
// ──────────────────────────────────────────────────────────────────────────────

func TestBlog_PaginacionEnOrdenDeInsercion(t *testing.T) {
	s := newTestServer(t)
	for _, name := range []string{"a1", "a2", "a3", "a4"} {
		require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": name}, "", nil))
	}

	var first, second []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/authors/?skip=0&limit=2", nil, "", &first))
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/authors/?skip=2&limit=2", nil, "", &second))

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "a1", first[0]["name"])
	assert.Equal(t, "a2", first[1]["name"])
	assert.Equal(t, "a3", second[0]["name"])
	assert.Equal(t, "a4", second[1]["name"])

	status, _ := s.do(http.MethodGet, "/blog/authors/?limit=1000", nil, "")
	assert.Equal(t, http.StatusBadRequest, status, "limit fuera de rango")
}

func TestBlog_CicloDeVidaDePostYComentarios(t *testing.T) {
	s := newTestServer(t)

	var author jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": "Ana"}, "", &author))
	authorID := author["id"].(string)

	var dup jsonObj
	assert.Equal(t, http.StatusBadRequest, s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": "Ana"}, "", &dup))
	assert.Equal(t, "DUPLICATE", dup["code"])

	// author_id por query
	var post jsonObj
	status := s.decode(http.MethodPost, "/blog/posts/?author_id="+authorID,
		jsonObj{"title": "Hola", "content": "<strong>mundo</strong><script>alert(1)</script>"}, "", &post)
	require.Equal(t, http.StatusOK, status)
	postID := post["id"].(string)
	assert.Equal(t, "<strong>mundo</strong><script>alert(1)</script>", post["content"], "el contenido se guarda tal cual")
	assert.Equal(t, "<strong>mundo</strong>", post["content_html"], "el html expuesto se sanea")

	var got jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/posts/"+postID, nil, "", &got))
	assert.Equal(t, post, got)

	var patched jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPut, "/blog/posts/"+postID, jsonObj{"title": "Chao"}, "", &patched))
	assert.Equal(t, "Chao", patched["title"])
	assert.Equal(t, post["content"], patched["content"], "los campos omitidos no cambian")

	var comment jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/posts/"+postID+"/comments/", jsonObj{"content": "bien"}, "", &comment))
	assert.Equal(t, postID, comment["post_id"])

	var empty jsonObj
	status = s.decode(http.MethodPost, "/blog/posts/"+postID+"/comments/", jsonObj{"content": "   "}, "", &empty)
	assert.Equal(t, http.StatusBadRequest, status, "comentario en blanco")

	status, _ = s.do(http.MethodPost, "/blog/posts/no-existe/comments/", jsonObj{"content": "x"}, "")
	assert.Equal(t, http.StatusNotFound, status)

	var comments []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/posts/"+postID+"/comments/", nil, "", &comments))
	assert.Len(t, comments, 1)

	var deleted jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodDelete, "/blog/posts/"+postID, nil, "", &deleted))
	assert.Equal(t, postID, deleted["id"], "delete devuelve el registro borrado")

	status, _ = s.do(http.MethodGet, "/blog/posts/"+postID, nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(http.MethodGet, "/blog/comments/"+comment["id"].(string), nil, "")
	assert.Equal(t, http.StatusNotFound, status, "los comentarios se borran con el post")
}

func TestBlog_TextoPlanoIdaYVuelta(t *testing.T) {
	s := newTestServer(t)

	var author jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": "Ana"}, "", &author))

	var post jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/posts/",
		jsonObj{"title": "Tom & Jerry", "content": "Tom & Jerry <3", "author_id": author["id"]}, "", &post))

	var got jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/posts/"+post["id"].(string), nil, "", &got))
	assert.Equal(t, "Tom & Jerry", got["title"])
	assert.Equal(t, "Tom & Jerry <3", got["content"])
	assert.Equal(t, "Tom &amp; Jerry &lt;3", got["content_html"])
}

func TestBlog_NombreEnBlancoEsInvalido(t *testing.T) {
	s := newTestServer(t)

	var body jsonObj
	status := s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": "   "}, "", &body)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	var list []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/authors/", nil, "", &list))
	assert.Empty(t, list)
}

func TestBlog_PostConAutorInexistente(t *testing.T) {
	s := newTestServer(t)

	var body jsonObj
	status := s.decode(http.MethodPost, "/blog/posts/", jsonObj{"title": "t", "content": "c", "author_id": "no-existe"}, "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REFERENCE", body["code"])
}

func TestBlog_CuerpoMalformado(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/blog/authors/", strings.NewReader("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	status, _ := s.send(req)
	assert.Equal(t, http.StatusBadRequest, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tasks
// ──────────────────────────────────────────────────────────────────────────────

func TestTasks_CRUD(t *testing.T) {
	s := newTestServer(t)
	userID, tok := s.registerAndLogin("dave", "s3cret")

	status, _ := s.do(http.MethodGet, "/task/tasks/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	var task jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/task/tasks/"+userID, jsonObj{"title": "leer", "description": "cap 1"}, tok, &task))
	id := task["id"].(string)
	assert.Equal(t, false, task["completed"])

	var done jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPut, "/task/tasks/"+id, jsonObj{"completed": true}, tok, &done))
	assert.Equal(t, true, done["completed"])
	assert.Equal(t, "leer", done["title"])

	var list []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/task/tasks/", nil, tok, &list))
	assert.Len(t, list, 1)

	require.Equal(t, http.StatusOK, s.decode(http.MethodDelete, "/task/tasks/"+id, nil, tok, nil))
	status, _ = s.do(http.MethodGet, "/task/tasks/"+id, nil, tok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTasks_DuenoNoCambiaConPeticionesPosteriores(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.registerAndLogin("ivan", "s3cret")

	var task jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/task/tasks/owner-AAAAAAAAAAAAAAAA",
		jsonObj{"title": "pendiente"}, tok, &task))
	id := task["id"].(string)

	// misma longitud de ruta: reutilizan el buffer de la petición anterior
	for i := 0; i < 20; i++ {
		status, _ := s.do(http.MethodGet, "/task/tasks/ZZZZZZZZZZZZZZZZZZZZZZ", nil, tok)
		require.Equal(t, http.StatusNotFound, status)
	}

	var got jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/task/tasks/"+id, nil, tok, &got))
	assert.Equal(t, "owner-AAAAAAAAAAAAAAAA", got["owner_id"])

	var list []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/task/tasks/", nil, tok, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "owner-AAAAAAAAAAAAAAAA", list[0]["owner_id"])
	assert.Equal(t, "pendiente", list[0]["title"])
}

func TestBlog_AutorPorQueryNoCambiaConPeticionesPosteriores(t *testing.T) {
	s := newTestServer(t)

	var author jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/authors/", jsonObj{"name": "Ana"}, "", &author))
	authorID := author["id"].(string)

	var post jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/blog/posts/?author_id="+authorID,
		jsonObj{"title": "t", "content": "c"}, "", &post))

	other := strings.Repeat("Z", len(authorID))
	for i := 0; i < 20; i++ {
		s.do(http.MethodGet, "/blog/posts/?author_id="+other, nil, "")
	}

	var got jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/blog/posts/"+post["id"].(string), nil, "", &got))
	assert.Equal(t, authorID, got["author_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Shop
// ──────────────────────────────────────────────────────────────────────────────

func TestShop_PedidoYComprobante(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.registerAndLogin("erin", "s3cret")

	status, _ := s.do(http.MethodGet, "/shop/products/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	var cat, prod, cust, order jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/shop/categories/", jsonObj{"name": "libros"}, tok, &cat))
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/shop/products/",
		jsonObj{"name": "Go en práctica", "price": "19.99", "category_id": cat["id"]}, tok, &prod))
	assert.Equal(t, "19.99", prod["price"], "el precio viaja como string decimal")
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/shop/customers/",
		jsonObj{"name": "Frank", "email": "Frank@Example.com"}, tok, &cust))
	assert.Equal(t, "Frank@Example.com", cust["email"])
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/shop/orders/",
		jsonObj{"product_id": prod["id"], "customer_id": cust["id"], "quantity": 2}, tok, &order))

	req := httptest.NewRequest(http.MethodGet, "/shop/orders/"+order["id"].(string)+"/receipt", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	var inUse jsonObj
	assert.Equal(t, http.StatusBadRequest, s.decode(http.MethodDelete, "/shop/categories/"+cat["id"].(string), nil, tok, &inUse))
	assert.Equal(t, "IN_USE", inUse["code"])

	var dupEmail jsonObj
	assert.Equal(t, http.StatusBadRequest, s.decode(http.MethodPost, "/shop/customers/",
		jsonObj{"name": "Otro", "email": "frank@example.com"}, tok, &dupEmail))
	assert.Equal(t, "DUPLICATE", dupEmail["code"])

	status, _ = s.do(http.MethodPost, "/shop/orders/",
		jsonObj{"product_id": prod["id"], "customer_id": cust["id"], "quantity": 0}, tok)
	assert.Equal(t, http.StatusBadRequest, status, "cantidad debe ser positiva")

	status, _ = s.do(http.MethodPost, "/shop/products/",
		jsonObj{"name": "x", "price": "-1", "category_id": cat["id"]}, tok)
	assert.Equal(t, http.StatusBadRequest, status, "precio negativo")

	var noPrice jsonObj
	assert.Equal(t, http.StatusBadRequest, s.decode(http.MethodPost, "/shop/products/",
		jsonObj{"name": "sin precio", "category_id": cat["id"]}, tok, &noPrice))
	assert.Equal(t, "price", noPrice["fields"].([]any)[0].(map[string]any)["field"])

	status, _ = s.do(http.MethodPost, "/shop/categories/", jsonObj{"name": "   "}, tok)
	assert.Equal(t, http.StatusBadRequest, status, "nombre en blanco")

	status, _ = s.do(http.MethodGet, "/shop/orders/no-existe/receipt", nil, tok)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notes
// ──────────────────────────────────────────────────────────────────────────────

func TestNotes_AislamientoPorDueno(t *testing.T) {
	s := newTestServer(t)
	aliceID, alice := s.registerAndLogin("alice", "s3cret")
	_, bob := s.registerAndLogin("bob", "s3cret")

	var note jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/notes/", jsonObj{"title": "privada", "content": "x"}, alice, &note))
	assert.Equal(t, aliceID, note["owner"])
	id := note["id"].(string)

	status, _ := s.do(http.MethodGet, "/notes/"+id, nil, bob)
	assert.Equal(t, http.StatusNotFound, status, "la nota de otro usuario no existe para bob")
	status, _ = s.do(http.MethodPut, "/notes/"+id, jsonObj{"title": "mía"}, bob)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(http.MethodDelete, "/notes/"+id, nil, bob)
	assert.Equal(t, http.StatusNotFound, status)

	var bobNotes []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/notes/", nil, bob, &bobNotes))
	assert.Empty(t, bobNotes)

	var got jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/notes/"+id, nil, alice, &got))
	assert.Equal(t, "privada", got["title"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Library
// ──────────────────────────────────────────────────────────────────────────────

func TestLibrary_CatalogoConETag(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusOK, s.decode(http.MethodPost, "/library/books/",
		jsonObj{"id": "978-0262510875", "title": "SICP", "author": "Abelson", "year": 1985}, "", nil))

	var dup jsonObj
	assert.Equal(t, http.StatusBadRequest, s.decode(http.MethodPost, "/library/books/",
		jsonObj{"id": "978-0262510875", "title": "x", "author": "y"}, "", &dup))
	assert.Equal(t, "DUPLICATE", dup["code"])

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/library/catalog.xml", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/library/catalog.xml", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	require.Equal(t, http.StatusOK, s.decode(http.MethodPut, "/library/books/978-0262510875", jsonObj{"genre": "cs"}, "", nil))

	req = httptest.NewRequest(http.MethodGet, "/library/catalog.xml", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el contenido cambió")
	assert.NotEqual(t, etag, resp.Header.Get("ETag"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Feature flags
// ──────────────────────────────────────────────────────────────────────────────

func TestFeatures_RutasCondicionadas(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.registerAndLogin("gina", "s3cret")

	var flags []jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/features/", nil, "", &flags))
	assert.Len(t, flags, 3)

	var denied jsonObj
	assert.Equal(t, http.StatusForbidden, s.decode(http.MethodGet, "/example_one", nil, "", &denied))
	assert.Equal(t, "FEATURE_DISABLED", denied["code"])
	assert.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/example_2", nil, "", nil))
	assert.Equal(t, http.StatusForbidden, s.decode(http.MethodGet, "/example_3", nil, "", nil))

	status, _ := s.do(http.MethodPut, "/features", jsonObj{"flag_name": "dark_mode", "enabled": true}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	var flag jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodPut, "/features", jsonObj{"flag_name": "dark_mode", "enabled": true}, tok, &flag))
	assert.Equal(t, true, flag["enabled"])
	assert.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/example_one", nil, "", nil))

	status, _ = s.do(http.MethodPut, "/features", jsonObj{"flag_name": "inexistente", "enabled": true}, tok)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(http.MethodGet, "/features/inexistente", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(http.MethodPut, "/features", jsonObj{"flag_name": "reset"}, tok)
	assert.Equal(t, http.StatusBadRequest, status, "enabled es obligatorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salud y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthYMetricas(t *testing.T) {
	s := newTestServer(t)

	var health jsonObj
	require.Equal(t, http.StatusOK, s.decode(http.MethodGet, "/health", nil, "", &health))
	assert.Equal(t, "ok", health["status"])

	s.registerAndLogin("hank", "s3cret")

	status, raw := s.do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, status)
	body := string(raw)
	assert.Contains(t, body, "practica_http_requests_total")
	assert.Contains(t, body, `route="/auth/login"`)
	assert.Contains(t, body, `practica_logins_total{result="ok"} 1`)
	assert.Contains(t, body, "practica_registrations_total 1")
}

func TestRutaInexistente_RespondeJSON(t *testing.T) {
	s := newTestServer(t)

	var body jsonObj
	assert.Equal(t, http.StatusNotFound, s.decode(http.MethodGet, "/no/existe", nil, "", &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}
