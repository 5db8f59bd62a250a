package repository

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven User.Roles ordenados por nombre.
// Create y Update devuelven domain.ErrUsernameExists si el username ya está tomado.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// RoleRepository administra roles y su asignación a usuarios.
type RoleRepository interface {
	// Upsert crea el rol si no existe y lo devuelve en ambos casos.
	Upsert(ctx context.Context, name string) (*entity.Role, error)
	// Assign vincula rol y usuario; repetir la asignación no es error.
	Assign(ctx context.Context, userID, roleID string) error
}
