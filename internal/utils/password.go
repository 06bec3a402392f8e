package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the original deployment used for all
// stored hashes; changing it only affects newly created credentials.
const bcryptCost = 10

// HashPassword derives a bcrypt hash from the plaintext password.
// bcrypt embeds a randomly generated per-hash salt, so two calls with the
// same input produce different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePasswordFromName derives the one-time credential handed out on
// first OAuth login: the capitalized first word of the display name plus a
// fixed "@0000" suffix. The account owner is expected to change it via the
// password flow afterwards.
func GeneratePasswordFromName(fullName string) string {
	firstName := fullName
	if idx := strings.IndexByte(firstName, ' '); idx >= 0 {
		firstName = firstName[:idx]
	}
	if firstName == "" {
		firstName = "User"
	}

	runes := []rune(firstName)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes) + "@0000"
}
