package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the user-auth endpoints. All routes are public
// except token refresh, which goes through the refresh-class gate; logout
// extracts and decodes its token leniently inside the handler.
func RegisterRoutes(app *fiber.App, h *AuthHandler, gate *AuthGate) {
	user := app.Group("/api/v1/user")

	user.Post("/signup", h.Signup)
	user.Post("/login", h.Login)
	user.Post("/user-account-verification/:token/:email", h.VerifyAccount)
	user.Post("/send-password-reset-link", h.ForgotPassword)
	user.Post("/reset-password/:token", h.ResetPassword)

	user.Post("/renew-access-token", gate.TokenRequired(true), h.Refresh)
	user.Post("/logout", h.Logout)
}
