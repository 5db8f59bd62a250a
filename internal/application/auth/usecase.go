package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner RegistrationTxRunner
	creds    *CredentialService

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner RegistrationTxRunner, creds *CredentialService) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, creds: creds}
}

// RegisterUser crea el usuario con el rol indicado en una sola transacción.
// Devuelve domain.ErrUsernameExists si el username ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest, role string) (*dto.UserResponse, error) {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, domain.NewFieldError("role", "oneof")
	}
	hash, err := uc.creds.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           entity.NewID(),
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunRegistration(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		r, err := roles.Upsert(ctx, role)
		if err != nil {
			return err
		}
		return roles.Assign(ctx, user.ID, r.ID)
	})
	if err != nil {
		return nil, err
	}
	user.Roles = []string{role}
	return toUserResponse(user), nil
}

// Login verifica username/password y emite un token bearer.
// Usuario inexistente y password incorrecto son el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			uc.creds.VerifyPassword(in.Password, uc.timingHash())
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if !uc.creds.VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthenticated
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	ttl := uc.creds.TTL()
	token, err := uc.creds.IssueToken(Identity{UserID: user.ID, Username: user.Username, Roles: user.Roles}, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

// GetUser busca por id.
func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByUsername busca por username.
func (uc *AuthUseCase) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ListUsers listado paginado.
func (uc *AuthUseCase) ListUsers(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *entity.User, _ int) dto.UserResponse { return *toUserResponse(u) }), nil
}

// Me devuelve el usuario dueño del token. Si la cuenta ya no existe el token deja de servir.
func (uc *AuthUseCase) Me(ctx context.Context, id Identity) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if !u.Active {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(u), nil
}

// UpdateProfile cambia nombre, apellido y/o username del usuario del token.
// Un username ya tomado falla con domain.ErrUsernameExists (constraint del store).
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, id Identity, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	u.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("actualizar perfil: %w", err)
	}
	return toUserResponse(u), nil
}

// timingHash hash fijo para que un username inexistente cueste lo mismo que uno real.
func (uc *AuthUseCase) timingHash() string {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.creds.HashPassword("usuario-inexistente")
	})
	return uc.dummyHash
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Active:    u.Active,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
