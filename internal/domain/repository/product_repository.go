package repository

import "github.com/jhoicas/practica-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	CRUD[entity.Product]
}
