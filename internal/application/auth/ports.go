package auth

import (
	"context"

	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// RegistrationTxRunner ejecuta fn con repos de usuarios y roles atados a una misma transacción.
// Si fn retorna error no queda nada persistido.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
	) error) error
}
