package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost 8 keeps registration and login under ~50ms; this is an internal
// consulting tool, not a public signup page.
const bcryptCost = 8

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
