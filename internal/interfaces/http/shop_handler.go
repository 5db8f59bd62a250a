package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/application/shop"
)

// ShopHandler categorías, productos, clientes y pedidos (protegido).
// Los métodos de cada recurso viven en su propio archivo.
type ShopHandler struct {
	uc *shop.ShopUseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *shop.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /shop/categories/ [post]
func (h *ShopHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) ListCategories(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListCategories(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateCategory(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory falla con IN_USE si quedan productos en la categoría.
func (h *ShopHandler) DeleteCategory(c *fiber.Ctx) error {
	out, err := h.uc.DeleteCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
