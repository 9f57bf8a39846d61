package service

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gowtham404/books-store-api/internal/auth/security"
)

// emailPattern is the structural part of the signup email rule: a standard
// local part, a dotted domain and a TLD of at least two letters. The
// no-consecutive-dots rule is checked separately since Go's regexp has no
// lookahead.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	if strings.Contains(email, "..") {
		return false
	}
	return emailPattern.MatchString(email)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("emailstrict", func(fl validator.FieldLevel) bool {
		return isValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return security.IsStrongPassword(fl.Field().String())
	})
	return v
}
