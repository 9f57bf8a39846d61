package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(apperrors.ErrUserNotFound))
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(stderrors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", apperrors.ErrSessionInvalid)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrAllFieldsRequired, fiber.StatusBadRequest},
		{apperrors.ErrEmailAlreadyInUse, fiber.StatusConflict},
		{apperrors.ErrUserNotFound, fiber.StatusNotFound},
		{apperrors.ErrPasswordIncorrect, fiber.StatusUnauthorized},
		{apperrors.ErrTokenExpired, fiber.StatusUnauthorized},
		{apperrors.ErrTokenInvalid, fiber.StatusUnauthorized},
		{apperrors.New(apperrors.KindInternal, "boom"), fiber.StatusInternalServerError},
		{stderrors.New("untagged"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, apperrors.HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "User doesn't exist!", apperrors.MessageOf(apperrors.ErrUserNotFound))
	assert.Equal(t, "Internal server error!", apperrors.MessageOf(stderrors.New("pg: connection refused")))

	wrapped := apperrors.Wrap(apperrors.KindInternal, "Failed to send account verification email!", stderrors.New("dial tcp: refused"))
	assert.Equal(t, "Failed to send account verification email!", apperrors.MessageOf(wrapped))
	assert.Contains(t, wrapped.Error(), "dial tcp")
}
