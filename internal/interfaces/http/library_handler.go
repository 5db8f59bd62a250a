package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/application/library"
)

// LibraryHandler libros y catálogo XML (público).
type LibraryHandler struct {
	uc *library.LibraryUseCase
}

// NewLibraryHandler construye el handler.
func NewLibraryHandler(uc *library.LibraryUseCase) *LibraryHandler {
	return &LibraryHandler{uc: uc}
}

// CreateBook godoc
// @Summary      Crear libro
// @Description  El id lo elige el cliente; un id repetido responde 400 DUPLICATE.
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Libro"
// @Success      200   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /library/books/ [post]
func (h *LibraryHandler) CreateBook(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateBook(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *LibraryHandler) GetBook(c *fiber.Ctx) error {
	out, err := h.uc.GetBook(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *LibraryHandler) ListBooks(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListBooks(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *LibraryHandler) UpdateBook(c *fiber.Ctx) error {
	var in dto.UpdateBookRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateBook(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *LibraryHandler) DeleteBook(c *fiber.Ctx) error {
	out, err := h.uc.DeleteBook(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Catalog godoc
// @Summary      Catálogo XML canónico
// @Description  ETag fuerte (SHA-256 de la forma canónica); If-None-Match igual responde 304.
// @Tags         library
// @Produce      application/xml
// @Success      200  {string}  string
// @Success      304
// @Router       /library/catalog.xml [get]
func (h *LibraryHandler) Catalog(c *fiber.Ctx) error {
	cat, err := h.uc.Catalog(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderETag, cat.ETag)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	if match := c.Get(fiber.HeaderIfNoneMatch); match != "" && etagMatches(match, cat.ETag) {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(cat.XML)
}

// etagMatches admite listas separadas por coma y el comodín *.
func etagMatches(header, etag string) bool {
	return lo.ContainsBy(strings.Split(header, ","), func(candidate string) bool {
		candidate = strings.TrimSpace(candidate)
		return candidate == "*" || candidate == etag
	})
}
