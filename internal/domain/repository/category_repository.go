package repository

import "github.com/jhoicas/practica-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete devuelve domain.ErrInUse si quedan productos en la categoría.
type CategoryRepository interface {
	CRUD[entity.Category]
}
