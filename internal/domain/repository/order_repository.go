package repository

import "github.com/jhoicas/practica-api/internal/domain/entity"

// OrderRepository pedidos; producto y cliente deben existir.
type OrderRepository interface {
	CRUD[entity.Order]
}
