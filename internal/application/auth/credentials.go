package auth

import (
	"fmt"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/pkg/jwt"
	"github.com/jhoicas/practica-api/pkg/password"
)

// Identity datos del usuario autenticado que viajan dentro del token.
type Identity struct {
	UserID   string
	Username string
	Roles    []string
}

// CredentialConfig configuración del servicio de credenciales.
type CredentialConfig struct {
	Secret     string
	Issuer     string
	TTL        time.Duration
	BcryptCost int
}

// CredentialService hashea contraseñas y emite/valida tokens firmados.
type CredentialService struct {
	hasher *password.Hasher
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewCredentialService construye el servicio; TTL <= 0 usa 30 minutos.
func NewCredentialService(cfg CredentialConfig) *CredentialService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CredentialService{
		hasher: password.NewHasher(cfg.BcryptCost),
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *CredentialService) WithClock(now func() time.Time) *CredentialService {
	s.now = now
	return s
}

// TTL duración por defecto de los tokens.
func (s *CredentialService) TTL() time.Duration {
	return s.ttl
}

// HashPassword devuelve el hash de plain.
func (s *CredentialService) HashPassword(plain string) (string, error) {
	h, err := s.hasher.Hash(plain)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

// VerifyPassword compara en tiempo constante.
func (s *CredentialService) VerifyPassword(plain, hash string) bool {
	return s.hasher.Verify(plain, hash)
}

// IssueToken emite un token para id que expira en now+ttl; ttl <= 0 usa el TTL por defecto.
func (s *CredentialService) IssueToken(id Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	tok, err := jwt.GenerateAt(s.secret, s.issuer, id.UserID, id.Username, id.Roles, ttl, s.now())
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}
	return tok, nil
}

// ValidateToken cualquier fallo (firma, formato, expiración) es domain.ErrUnauthenticated.
func (s *CredentialService) ValidateToken(token string) (Identity, error) {
	claims, err := jwt.ParseAt(s.secret, token, s.now())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return Identity{UserID: claims.UserID, Username: claims.Username(), Roles: claims.Roles}, nil
}
