package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order referencia un producto y un cliente existentes.
type Order struct {
	ID         string
	ProductID  string
	CustomerID string
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total precio unitario por cantidad.
func (o *Order) Total(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
