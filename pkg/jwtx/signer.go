package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum accepted HMAC secret size in bytes.
// Anything shorter than the HS256 output size weakens the MAC.
const MinSecretLength = 32

// HS256Signer mints JWTs with a single process-wide symmetric secret.
// The secret is loaded once at startup and never mutated.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates a signer from the raw server secret.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, errors.New("jwtx: signing secret must be at least 32 bytes")
	}
	// Copy so a caller holding the original slice cannot mutate our key.
	key := make([]byte, len(secret))
	copy(key, secret)
	return &HS256Signer{secret: key}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes claims and turns them into a signed compact JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
