package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret se devuelve cuando no hay secreto de firma configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject es el username; UserID permite resolver al usuario sin consultar por nombre.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
}

// Username devuelve el subject del token.
func (c *Claims) Username() string {
	return c.Subject
}

// Generate genera un token HS256 firmado con expiración absoluta now+ttl.
func Generate(secret, issuer, userID, username string, roles []string, ttl time.Duration) (string, error) {
	return GenerateAt(secret, issuer, userID, username, roles, ttl, time.Now())
}

// GenerateAt igual que Generate pero con el instante de emisión explícito.
func GenerateAt(secret, issuer, userID, username string, roles []string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Roles:  roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token contra el reloj actual.
func Parse(secret, tokenString string) (*Claims, error) {
	return ParseAt(secret, tokenString, time.Now())
}

// ParseAt valida firma, algoritmo y expiración usando now como reloj.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParseAt(secret, tokenString string, now time.Time) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("jwt: claims inválidos")
	}
	if claims.Subject == "" {
		return nil, errors.New("jwt: token sin subject")
	}
	return claims, nil
}
