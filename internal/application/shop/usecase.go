package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// ShopUseCase categorías, productos, clientes y pedidos.
type ShopUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	receipts   ReceiptRenderer
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	receipts ReceiptRenderer,
) *ShopUseCase {
	return &ShopUseCase{categories: categories, products: products, customers: customers, orders: orders, receipts: receipts}
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (uc *ShopUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c := &entity.Category{ID: entity.NewID(), Name: strings.TrimSpace(in.Name)}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (uc *ShopUseCase) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (uc *ShopUseCase) ListCategories(ctx context.Context, page dto.PageRequest) ([]dto.CategoryResponse, error) {
	page.DefaultPage()
	list, err := uc.categories.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c *entity.Category, _ int) dto.CategoryResponse { return *toCategoryResponse(c) }), nil
}

func (uc *ShopUseCase) UpdateCategory(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(in.Name)
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// DeleteCategory falla con domain.ErrInUse si tiene productos.
func (uc *ShopUseCase) DeleteCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.categories.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (uc *ShopUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price == nil {
		return nil, domain.NewFieldError("price", "required")
	}
	if err := checkPrice(*in.Price); err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:          entity.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return toProductResponse(p), nil
}

func (uc *ShopUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (uc *ShopUseCase) ListProducts(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.products.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(p *entity.Product, _ int) dto.ProductResponse { return *toProductResponse(p) }), nil
}

func (uc *ShopUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if err := checkPrice(*in.Price); err != nil {
			return nil, err
		}
		p.Price = *in.Price
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return toProductResponse(p), nil
}

// DeleteProduct falla con domain.ErrInUse si hay pedidos del producto.
func (uc *ShopUseCase) DeleteProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (uc *ShopUseCase) CreateCustomer(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := &entity.Customer{ID: entity.NewID(), Name: strings.TrimSpace(in.Name), Email: in.Email}
	if err := uc.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *ShopUseCase) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *ShopUseCase) ListCustomers(ctx context.Context, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.customers.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c *entity.Customer, _ int) dto.CustomerResponse { return *toCustomerResponse(c) }), nil
}

func (uc *ShopUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if err := uc.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *ShopUseCase) DeleteCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func (uc *ShopUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewFieldError("quantity", "gt")
	}
	o := &entity.Order{ID: entity.NewID(), ProductID: in.ProductID, CustomerID: in.CustomerID, Quantity: in.Quantity}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	return toOrderResponse(o), nil
}

func (uc *ShopUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

func (uc *ShopUseCase) ListOrders(ctx context.Context, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(o *entity.Order, _ int) dto.OrderResponse { return *toOrderResponse(o) }), nil
}

func (uc *ShopUseCase) UpdateOrder(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductID != nil {
		o.ProductID = *in.ProductID
	}
	if in.CustomerID != nil {
		o.CustomerID = *in.CustomerID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.NewFieldError("quantity", "gt")
		}
		o.Quantity = *in.Quantity
	}
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("actualizar pedido: %w", err)
	}
	return toOrderResponse(o), nil
}

func (uc *ShopUseCase) DeleteOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// OrderReceipt genera el PDF del pedido con su total.
func (uc *ShopUseCase) OrderReceipt(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, o.ProductID)
	if err != nil {
		return nil, fmt.Errorf("producto del pedido: %w", err)
	}
	c, err := uc.customers.GetByID(ctx, o.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente del pedido: %w", err)
	}
	pdf, err := uc.receipts.RenderReceipt(&Receipt{
		Order:    *o,
		Product:  *p,
		Customer: *c,
		Total:    o.Total(p.Price),
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, nil
}

func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "price", Rule: "gte", Param: "0"}}}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		CustomerID: o.CustomerID,
		Quantity:   o.Quantity,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
