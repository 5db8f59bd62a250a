package blog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practica-api/internal/application/blog"
	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/infrastructure/memory"
	"github.com/jhoicas/practica-api/internal/infrastructure/sanitize"
)

func newBlog() *blog.BlogUseCase {
	s := memory.NewStore()
	return blog.NewBlogUseCase(s.Authors(), s.Posts(), s.Comments(), sanitize.NewHTMLSanitizer())
}

func ptr[T any](v T) *T { return &v }

func TestCreatePost_GuardaContenidoYExponeHTMLSaneado(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	a, err := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: "  Ana  "})
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Name)

	raw := `<p onclick="x()">texto</p><script>alert(1)</script>`
	p, err := uc.CreatePost(ctx, dto.CreatePostRequest{Title: "Hola", Content: raw, AuthorID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, raw, p.Content)
	assert.Equal(t, "<p>texto</p>", p.ContentHTML)
}

func TestCreatePost_TextoPlanoIdaYVuelta(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	a, err := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: "Ana"})
	require.NoError(t, err)

	p, err := uc.CreatePost(ctx, dto.CreatePostRequest{Title: "t", Content: "Tom & Jerry <3", AuthorID: a.ID})
	require.NoError(t, err)
	got, err := uc.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry <3", got.Content)
	assert.Equal(t, "Tom &amp; Jerry &lt;3", got.ContentHTML)

	c, err := uc.CreateComment(ctx, p.ID, dto.CommentRequest{Content: "a < b && b > c"})
	require.NoError(t, err)
	gotC, err := uc.GetComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "a < b && b > c", gotC.Content)
}

func TestCreatePost_AutorInexistente(t *testing.T) {
	uc := newBlog()

	_, err := uc.CreatePost(context.Background(), dto.CreatePostRequest{Title: "t", Content: "c", AuthorID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestCreatePost_SoloScriptQuedaSinHTML(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	a, err := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: "Ana"})
	require.NoError(t, err)

	p, err := uc.CreatePost(ctx, dto.CreatePostRequest{Title: "t", Content: "<script>x</script>", AuthorID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, "<script>x</script>", p.Content)
	assert.Empty(t, p.ContentHTML)
}

func TestUpdatePost_SoloCamposPresentes(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	a, _ := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: "Ana"})
	p, err := uc.CreatePost(ctx, dto.CreatePostRequest{Title: "Uno", Content: "cuerpo", AuthorID: a.ID})
	require.NoError(t, err)

	out, err := uc.UpdatePost(ctx, p.ID, dto.UpdatePostRequest{Title: ptr("Dos")})
	require.NoError(t, err)
	assert.Equal(t, "Dos", out.Title)
	assert.Equal(t, "cuerpo", out.Content)
	assert.Equal(t, a.ID, out.AuthorID)

	_, err = uc.UpdatePost(ctx, p.ID, dto.UpdatePostRequest{AuthorID: ptr("nadie")})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestDeleteAuthor_BorraEnCascada(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	a, _ := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: "Ana"})
	p, _ := uc.CreatePost(ctx, dto.CreatePostRequest{Title: "t", Content: "c", AuthorID: a.ID})
	c, err := uc.CreateComment(ctx, p.ID, dto.CommentRequest{Content: "bien"})
	require.NoError(t, err)

	deleted, err := uc.DeleteAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, deleted.ID)

	_, err = uc.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetComment(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComentarios_PostInexistente(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()

	_, err := uc.CreateComment(ctx, "nadie", dto.CommentRequest{Content: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.ListPostComments(ctx, "nadie", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAuthors_PaginaPorDefecto(t *testing.T) {
	uc := newBlog()
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		_, err := uc.CreateAuthor(ctx, dto.AuthorRequest{Name: n})
		require.NoError(t, err)
	}

	all, err := uc.ListAuthors(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := uc.ListAuthors(ctx, dto.PageRequest{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Name)
}
