// Package security provides password hashing and the account password
// strength policy.
package security

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

const specialCharacters = "@#$%=:?./|~>"

// HashPassword hashes a password with bcrypt. The returned hash embeds its
// own salt and cost, so verification needs nothing beyond the hash itself.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperrors.New(apperrors.KindValidation, "Password cannot be empty.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Failed to hash password!", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, apperrors.New(apperrors.KindValidation, "Password and hashed password cannot be empty.")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, apperrors.Wrap(apperrors.KindInternal, "Failed to verify password!", err)
}

// IsStrongPassword reports whether password satisfies the signup policy:
// at least 8 characters with one uppercase letter, one lowercase letter,
// one digit and one special character from the fixed set.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialCharacters, r) {
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
