package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/application/usecase"
)

// NoteHandler notas privadas: el dueño siempre es el usuario del token.
// Una nota de otro usuario responde 404, igual que una inexistente.
type NoteHandler struct {
	uc *usecase.NoteUseCase
}

// NewNoteHandler construye el handler.
func NewNoteHandler(uc *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear nota
// @Tags         notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NoteRequest  true  "Nota"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /notes/ [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.NoteRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *NoteHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *NoteHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *NoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNoteRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
