// Package password encapsula el hash y la verificación de contraseñas con bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost costo bcrypt usado cuando no se configura otro.
const DefaultCost = bcrypt.DefaultCost

// Hasher aplica bcrypt con un costo fijo.
type Hasher struct {
	cost int
}

// NewHasher crea un Hasher; un costo fuera de rango usa DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain. Dos llamadas con el mismo valor
// producen hashes distintos (sal aleatoria). La cadena vacía es una contraseña válida.
func (h *Hasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify compara plain con un hash previo. Un hash malformado es simplemente "no coincide".
func (h *Hasher) Verify(plain, hashed string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), prehash(plain)) == nil
}

// bcrypt ignora lo que exceda 72 bytes; el resumen SHA-256 en base64 ocupa 44.
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
