package repository

import "github.com/jhoicas/practica-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	CRUD[entity.Customer]
}
