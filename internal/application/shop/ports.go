package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// Receipt datos de un comprobante de pedido.
type Receipt struct {
	Order    entity.Order
	Product  entity.Product
	Customer entity.Customer
	Total    decimal.Decimal
	IssuedAt time.Time
}

// ReceiptRenderer genera el documento (PDF) de un comprobante.
type ReceiptRenderer interface {
	RenderReceipt(r *Receipt) ([]byte, error)
}
