/*
Package auth implements the authentication core: password hashing and the
service orchestrating registration, login, and the advisory username check.
*/
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a configurable work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher validates the work factor up front: an out-of-range cost
// is a fatal configuration error, not a per-request one. A zero cost selects
// the bcrypt default.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside valid range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &PasswordHasher{cost: cost}, nil
}

// Hash derives a one-way salted hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time; the plaintext is never logged.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
