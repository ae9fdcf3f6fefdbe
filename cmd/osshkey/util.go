package main

import (
	"crypto/rand"
	"fmt"
)

// randomSalt returns n cryptographically random bytes for use as a
// bcrypt_pbkdf salt.
func randomSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
