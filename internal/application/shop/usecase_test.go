package shop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/application/shop"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/infrastructure/memory"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	last *shop.Receipt
	err  error
}

func (f *fakeRenderer) RenderReceipt(r *shop.Receipt) ([]byte, error) {
	f.last = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func newShop() (*shop.ShopUseCase, *fakeRenderer) {
	s := memory.NewStore()
	r := &fakeRenderer{}
	return shop.NewShopUseCase(s.Categories(), s.Products(), s.Customers(), s.Orders(), r), r
}

// seed categoría + producto + cliente.
func seed(t *testing.T, uc *shop.ShopUseCase, price string) (cat, prod, cust string) {
	t.Helper()
	ctx := context.Background()
	c, err := uc.CreateCategory(ctx, dto.CategoryRequest{Name: "libros"})
	require.NoError(t, err)
	p, err := uc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Go", Price: lo.ToPtr(decimal.RequireFromString(price)), CategoryID: c.ID})
	require.NoError(t, err)
	cu, err := uc.CreateCustomer(ctx, dto.CustomerRequest{Name: "Frank", Email: "Frank@Example.com"})
	require.NoError(t, err)
	return c.ID, p.ID, cu.ID
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestOrderReceipt_TotalEsPrecioPorCantidad(t *testing.T) {
	uc, r := newShop()
	ctx := context.Background()
	_, prod, cust := seed(t, uc, "19.99")

	o, err := uc.CreateOrder(ctx, dto.CreateOrderRequest{ProductID: prod, CustomerID: cust, Quantity: 3})
	require.NoError(t, err)

	pdf, err := uc.OrderReceipt(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	require.NotNil(t, r.last)
	assert.Equal(t, "59.97", r.last.Total.StringFixed(2))
	assert.Equal(t, "Frank@Example.com", r.last.Customer.Email)
}

func TestOrderReceipt_ErrorDelRenderer(t *testing.T) {
	uc, r := newShop()
	ctx := context.Background()
	_, prod, cust := seed(t, uc, "1")
	o, err := uc.CreateOrder(ctx, dto.CreateOrderRequest{ProductID: prod, CustomerID: cust, Quantity: 1})
	require.NoError(t, err)

	r.err = errors.New("sin fuentes")
	_, err = uc.OrderReceipt(ctx, o.ID)
	assert.ErrorContains(t, err, "sin fuentes")
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	uc, _ := newShop()
	cat, _, _ := seed(t, uc, "0")

	_, err := uc.CreateProduct(context.Background(), dto.CreateProductRequest{Name: "x", Price: lo.ToPtr(decimal.NewFromInt(-1)), CategoryID: cat})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Fields[0].Field)
}

func TestCreateProduct_SinPrecio(t *testing.T) {
	uc, _ := newShop()
	cat, _, _ := seed(t, uc, "1")

	_, err := uc.CreateProduct(context.Background(), dto.CreateProductRequest{Name: "x", CategoryID: cat})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Rule)
}

func TestCreateCustomer_ConservaEmailEnviado(t *testing.T) {
	uc, _ := newShop()
	ctx := context.Background()

	c, err := uc.CreateCustomer(ctx, dto.CustomerRequest{Name: "Ana", Email: "Ana.Perez@Example.COM"})
	require.NoError(t, err)
	got, err := uc.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana.Perez@Example.COM", got.Email)
}

func TestCreateOrder_Referencias(t *testing.T) {
	uc, _ := newShop()
	ctx := context.Background()
	_, prod, cust := seed(t, uc, "5")

	_, err := uc.CreateOrder(ctx, dto.CreateOrderRequest{ProductID: "nadie", CustomerID: cust, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	_, err = uc.CreateOrder(ctx, dto.CreateOrderRequest{ProductID: prod, CustomerID: cust, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_PadresEnUso(t *testing.T) {
	uc, _ := newShop()
	ctx := context.Background()
	cat, prod, cust := seed(t, uc, "5")
	o, err := uc.CreateOrder(ctx, dto.CreateOrderRequest{ProductID: prod, CustomerID: cust, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.DeleteCategory(ctx, cat)
	assert.ErrorIs(t, err, domain.ErrInUse)
	_, err = uc.DeleteProduct(ctx, prod)
	assert.ErrorIs(t, err, domain.ErrInUse)
	_, err = uc.DeleteCustomer(ctx, cust)
	assert.ErrorIs(t, err, domain.ErrInUse)

	_, err = uc.DeleteOrder(ctx, o.ID)
	require.NoError(t, err)
	_, err = uc.DeleteProduct(ctx, prod)
	assert.NoError(t, err, "sin pedidos el producto se puede borrar")
}

func TestCreateCustomer_EmailDuplicadoSinImportarMayusculas(t *testing.T) {
	uc, _ := newShop()
	seed(t, uc, "1")

	_, err := uc.CreateCustomer(context.Background(), dto.CustomerRequest{Name: "Otro", Email: "FRANK@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
