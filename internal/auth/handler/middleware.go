package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gowtham404/books-store-api/internal/auth/service"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

// claimsLocalKey is where the gate stores verified claims on the request.
const claimsLocalKey = "token_claims"

// AuthGate authenticates requests ahead of protected flows: it verifies the
// bearer token for the expected class and confirms the carried session is
// still active.
type AuthGate struct {
	tokens   service.TokenGenerator
	sessions *service.SessionManager
}

func NewAuthGate(tokens service.TokenGenerator, sessions *service.SessionManager) *AuthGate {
	return &AuthGate{tokens: tokens, sessions: sessions}
}

// TokenRequired returns middleware enforcing a valid token of the given
// class and an active session for its session id.
func (g *AuthGate) TokenRequired(isRefresh bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return failJSON(c, apperrors.ErrTokenMissing)
		}

		claims, err := g.tokens.Verify(token, isRefresh)
		if err != nil {
			return failJSON(c, err)
		}

		active, err := g.sessions.IsActive(c.Context(), claims.SessionID)
		if err != nil {
			return failJSON(c, apperrors.Wrap(apperrors.KindInternal, "Failed to look up user session!", err))
		}
		if !active {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":            "failed",
				"device_logged_out": true,
				"message":           "Invalid token. User session does not exist.",
			})
		}

		c.Locals(claimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by TokenRequired, or nil.
func ClaimsFromContext(c *fiber.Ctx) *service.TokenClaims {
	claims, _ := c.Locals(claimsLocalKey).(*service.TokenClaims)
	return claims
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func failJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"status":  "failed",
		"message": apperrors.MessageOf(err),
	})
}
