package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest crea o renombra una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,notblank,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	CategoryID  string           `json:"category_id" validate:"required"`
}

// UpdateProductRequest actualización parcial.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,notblank"`
}

// ProductResponse salida de un producto; price viaja como string decimal.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CustomerRequest entrada de cliente.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateCustomerRequest actualización parcial.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateOrderRequest entrada de pedido.
type CreateOrderRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderRequest actualización parcial.
type UpdateOrderRequest struct {
	ProductID  *string `json:"product_id" validate:"omitempty,notblank"`
	CustomerID *string `json:"customer_id" validate:"omitempty,notblank"`
	Quantity   *int    `json:"quantity" validate:"omitempty,gt=0"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
