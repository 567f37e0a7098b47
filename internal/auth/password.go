package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies one-way digests of user passwords.
// It is an interface so workflows can take a test double.
type PasswordHasher interface {
	// Hash returns a salted digest of the plaintext. The plaintext is never
	// stored; a hashing failure must abort the calling workflow.
	Hash(plaintext string) (string, error)
	// Verify reports whether the plaintext matches the stored digest.
	Verify(plaintext, digest string) bool
}

// bcryptHasher implements PasswordHasher using bcrypt with a tunable cost.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a PasswordHasher. A cost outside bcrypt's valid
// range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
