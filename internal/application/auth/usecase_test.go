package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/infrastructure/memory"
)

func newAuth(t *testing.T) (*auth.AuthUseCase, *auth.CredentialService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	creds := auth.NewCredentialService(auth.CredentialConfig{
		Secret:     "test-secret",
		Issuer:     "practica-api-test",
		TTL:        30 * time.Minute,
		BcryptCost: bcrypt.MinCost,
	})
	return auth.NewAuthUseCase(store.Users(), store, creds), creds, store
}

func TestRegisterUser_UnaSolaVezPorUsername(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	in := dto.RegisterRequest{Username: "alice", FirstName: "Alice", LastName: "Liddell", Password: "s3cret"}

	u, err := uc.RegisterUser(ctx, in, entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.True(t, u.Active)
	assert.Equal(t, []string{"user"}, u.Roles)

	_, err = uc.RegisterUser(ctx, in, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestLogin_EscenarioAlice(t *testing.T) {
	uc, creds, _ := newAuth(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "alice", Password: "s3cret"}, entity.RoleUser)
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	tok, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, 1800, tok.ExpiresIn)

	id, err := creds.ValidateToken(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)

	me, err := uc.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, _, store := newAuth(t)
	ctx := context.Background()
	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "bob", Password: "s3cret"}, entity.RoleUser)
	require.NoError(t, err)

	stored, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	stored.Active = false
	require.NoError(t, store.Users().Update(ctx, stored))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProfile_UsernameTomado(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	a, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "alice", Password: "s3cret"}, entity.RoleUser)
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "bob", Password: "s3cret"}, entity.RoleAdmin)
	require.NoError(t, err)

	taken := "bob"
	_, err = uc.UpdateProfile(ctx, auth.Identity{UserID: a.ID, Username: "alice"}, dto.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	name := "Alicia"
	out, err := uc.UpdateProfile(ctx, auth.Identity{UserID: a.ID, Username: "alice"}, dto.UpdateProfileRequest{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", out.FirstName)
	assert.Equal(t, "alice", out.Username)
}

func TestListUsers_Paginado(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	for _, n := range []string{"ana", "beto", "caro"} {
		_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: n, Password: "s3cret"}, entity.RoleUser)
		require.NoError(t, err)
	}

	page, err := uc.ListUsers(ctx, dto.PageRequest{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "beto", page[0].Username)
}
