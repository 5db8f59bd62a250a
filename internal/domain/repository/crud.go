package repository

import "context"

// CRUD operaciones comunes a todos los repositorios de recursos.
// Create asigna ID y fechas sobre el mismo puntero. GetByID, Update y Delete
// devuelven domain.ErrNotFound si el registro no existe. List ordena por
// creación (created_at, id).
type CRUD[T any] interface {
	Create(ctx context.Context, v *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, limit, offset int) ([]*T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id string) (*T, error)
}
