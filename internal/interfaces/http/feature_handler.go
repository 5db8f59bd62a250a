package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/application/usecase"
)

// FeatureHandler consulta y cambia feature flags.
type FeatureHandler struct {
	svc *usecase.FeatureService
}

// NewFeatureHandler construye el handler.
func NewFeatureHandler(svc *usecase.FeatureService) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

// List godoc
// @Summary      Listar feature flags
// @Tags         features
// @Produce      json
// @Success      200  {array}  dto.FeatureResponse
// @Router       /features/ [get]
func (h *FeatureHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Estado de un feature flag
// @Tags         features
// @Produce      json
// @Param        name  path  string  true  "Nombre del flag"
// @Success      200   {object}  dto.FeatureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /features/{name} [get]
func (h *FeatureHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Activar o desactivar un flag existente
// @Tags         features
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateFeatureRequest  true  "flag_name, enabled"
// @Success      200   {object}  dto.FeatureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /features [put]
func (h *FeatureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFeatureRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.SetEnabled(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// demoMessage rutas de ejemplo detrás de RequireFeature.
func demoMessage(msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: msg})
	}
}
