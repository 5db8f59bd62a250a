package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un artículo de la tienda con precio decimal exacto.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
