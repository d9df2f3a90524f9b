package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHash is the bcrypt hash (cost 12) used when no password is
// configured. The corresponding password is "heslo".
const DefaultPasswordHash = "$2b$12$rgOkHM0IWEmHYTidLt2WmeQANUGlG1wJxwSeoFX/XPltU/8okgKW6"

const (
	hashCost         = 12
	sessionIDLength  = 32
	sessionIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// HashPassword derives the server-wide bcrypt hash from a configured
// plaintext password. Called once at startup.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the submitted password matches the
// server-wide hash. bcrypt is intentionally expensive; callers on a hot path
// should not hold locks across this call.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewSessionID mints a random 32-character alphanumeric session identifier.
// Collisions are not checked; at 62^32 possible values the probability is
// negligible.
func NewSessionID() (string, error) {
	id := make([]byte, sessionIDLength)
	max := big.NewInt(int64(len(sessionIDCharset)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate session id: %w", err)
		}
		id[i] = sessionIDCharset[n.Int64()]
	}
	return string(id), nil
}
