package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gowtham404/books-store-api/internal/auth/dto"
	"github.com/gowtham404/books-store-api/internal/auth/service"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrAllFieldsRequired)
	}

	user, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "User created successfully. Please check your email box and verify your account.",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrAllFieldsRequired)
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return failJSON(c, err)
	}

	// Unverified accounts get an HTTP-success response with a failed status:
	// the verification email was re-sent, the client should prompt for it.
	if !result.Verified {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "failed",
			"message": "User is not verified! Please check your email and verify your account.",
			"user":    result.User,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":            "success",
		"message":           "User logged in successfully!",
		"user":              result.User,
		"jwt_access_token":  result.AccessToken,
		"jwt_refresh_token": result.RefreshToken,
		"session_id":        result.SessionID,
	})
}

func (h *AuthHandler) VerifyAccount(c *fiber.Ctx) error {
	token := c.Params("token")

	message, err := h.userService.VerifyAccount(c.Context(), token)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	result, err := h.userService.Refresh(c.Context(), claims)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":            "success",
		"message":           "Access token refreshed successfully!",
		"jwt_access_token":  result.AccessToken,
		"jwt_refresh_token": result.RefreshToken,
		"session_id":        result.SessionID,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	if err := h.userService.Logout(c.Context(), token); err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "User logged out successfully!",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrEmailRequired)
	}

	if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Reset password link sent successfully. Please check your email.",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrNewPasswordRequired)
	}

	if err := h.userService.ResetPassword(c.Context(), token, input.Password); err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Password reset successfully. Login to continue.",
	})
}
