package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/blog"
	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
)

// BlogHandler autores, posts y comentarios (público).
type BlogHandler struct {
	uc *blog.BlogUseCase
}

// NewBlogHandler construye el handler.
func NewBlogHandler(uc *blog.BlogUseCase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

// ── Autores ───────────────────────────────────────────────────────────────────

// CreateAuthor godoc
// @Summary      Crear autor
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthorRequest  true  "Autor"
// @Success      200   {object}  dto.AuthorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /blog/authors/ [post]
func (h *BlogHandler) CreateAuthor(c *fiber.Ctx) error {
	var in dto.AuthorRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateAuthor(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) GetAuthor(c *fiber.Ctx) error {
	out, err := h.uc.GetAuthor(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) ListAuthors(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListAuthors(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) UpdateAuthor(c *fiber.Ctx) error {
	var in dto.AuthorRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateAuthor(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteAuthor borra el autor junto con sus posts y comentarios.
func (h *BlogHandler) DeleteAuthor(c *fiber.Ctx) error {
	out, err := h.uc.DeleteAuthor(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Posts ─────────────────────────────────────────────────────────────────────

// CreatePost godoc
// @Summary      Crear post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        author_id  query  string  false  "Autor (alternativa al cuerpo)"
// @Param        body  body  dto.CreatePostRequest  true  "Post"
// @Success      200   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /blog/posts/ [post]
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, domain.NewFieldError("body", "parse"))
	}
	if in.AuthorID == "" {
		in.AuthorID = c.Query("author_id")
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreatePost(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	out, err := h.uc.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListPosts(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	var in dto.UpdatePostRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdatePost(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	out, err := h.uc.DeletePost(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Comentarios ───────────────────────────────────────────────────────────────

// CreateComment godoc
// @Summary      Comentar un post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del post"
// @Param        body  body  dto.CommentRequest  true  "Comentario"
// @Success      200   {object}  dto.CommentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /blog/posts/{id}/comments/ [post]
func (h *BlogHandler) CreateComment(c *fiber.Ctx) error {
	var in dto.CommentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateComment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) ListPostComments(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListPostComments(c.UserContext(), c.Params("id"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) ListComments(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListComments(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) GetComment(c *fiber.Ctx) error {
	out, err := h.uc.GetComment(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) UpdateComment(c *fiber.Ctx) error {
	var in dto.CommentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateComment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *BlogHandler) DeleteComment(c *fiber.Ctx) error {
	out, err := h.uc.DeleteComment(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
