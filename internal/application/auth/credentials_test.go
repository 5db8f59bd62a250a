package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/domain"
)

func TestCredentialService_HashYVerify(t *testing.T) {
	svc := auth.NewCredentialService(auth.CredentialConfig{Secret: "k", BcryptCost: bcrypt.MinCost})

	h, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, svc.VerifyPassword("s3cret", h))
	assert.False(t, svc.VerifyPassword("S3cret", h))
}

func TestCredentialService_TokenExpira(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := auth.NewCredentialService(auth.CredentialConfig{Secret: "k", Issuer: "test"}).
		WithClock(func() time.Time { return now })

	tok, err := svc.IssueToken(auth.Identity{UserID: "u1", Username: "alice"}, 10*time.Minute)
	require.NoError(t, err)

	id, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)

	now = now.Add(11 * time.Minute)
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCredentialService_TokenDeOtroSecreto(t *testing.T) {
	a := auth.NewCredentialService(auth.CredentialConfig{Secret: "uno"})
	b := auth.NewCredentialService(auth.CredentialConfig{Secret: "dos"})

	tok, err := a.IssueToken(auth.Identity{UserID: "u1", Username: "alice"}, 0)
	require.NoError(t, err)

	_, err = b.ValidateToken(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = b.ValidateToken("basura")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
