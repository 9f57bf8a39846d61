package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error so callers can tell expected rejections
// (bad input, missing records) apart from infrastructure faults.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindBadCredentials
	KindUnauthorized
	KindExpiredToken
	KindInvalidToken
	KindInternal
)

// Error is the tagged error type used across services and handlers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error with the given kind and user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a kinded error. The message stays user-facing;
// the cause is for logs only.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing message for err. Untagged errors get a
// generic message so internals never leak to the wire.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error!"
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	case KindBadCredentials, KindUnauthorized, KindExpiredToken, KindInvalidToken:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

var (
	ErrAllFieldsRequired   = New(KindValidation, "All fields are required!")
	ErrInvalidEmailFormat  = New(KindValidation, "Invalid email format!")
	ErrWeakPassword        = New(KindValidation, "Please provide a strong password.")
	ErrEmailRequired       = New(KindValidation, "Email is required!")
	ErrNewPasswordRequired = New(KindValidation, "New password is required!")
	ErrEmailAlreadyInUse   = New(KindConflict, "User with this email already exists!")
	ErrUserNotFound        = New(KindNotFound, "User doesn't exist!")
	ErrPasswordIncorrect   = New(KindBadCredentials, "Password is incorrect!")
	ErrTokenMissing        = New(KindUnauthorized, "Token is missing")
	ErrTokenExpired        = New(KindExpiredToken, "Token has expired!")
	ErrTokenInvalid        = New(KindInvalidToken, "Invalid token!")
	ErrSessionInvalid      = New(KindUnauthorized, "User session is not valid! Please login again to continue.")
	ErrRefreshTokenInvalid = New(KindUnauthorized, "Invalid refresh token!")
	ErrBookNotFound        = New(KindNotFound, "Book not found")
)
