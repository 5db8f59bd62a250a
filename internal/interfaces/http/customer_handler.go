package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/practica-api/internal/application/dto"
)

// CreateCustomer godoc
// @Summary      Crear cliente
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "name, email"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /shop/customers/ [post]
func (h *ShopHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateCustomer(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) GetCustomer(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListCustomers godoc
// @Summary      Listar clientes
// @Tags         shop
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.CustomerResponse
// @Router       /shop/customers/ [get]
func (h *ShopHandler) ListCustomers(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListCustomers(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateCustomer(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ShopHandler) DeleteCustomer(c *fiber.Ctx) error {
	out, err := h.uc.DeleteCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
