package dto

import "github.com/gowtham404/books-store-api/internal/auth/domain"

// UserOutput is the wire shape for user-facing responses. Password and
// internal timestamps are never serialized.
type UserOutput struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		UserID:     user.UserID,
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}

// RefreshResult is returned by the token refresh flow. The refresh token is
// the stored one, re-returned unchanged.
type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
