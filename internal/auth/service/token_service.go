package service

//go:generate mockgen -source=token_service.go -destination=../../mocks/mock_token_service.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

// TokenGenerator issues and verifies the two token classes. Access and refresh
// tokens are signed with separate secrets and are never interchangeable.
type TokenGenerator interface {
	IssueAccessToken(userID, email, sessionID string) (string, error)
	IssueRefreshToken(userID, email, sessionID string) (string, error)
	Verify(tokenString string, isRefresh bool) (*TokenClaims, error)
	DecodeIgnoringExpiry(tokenString string) (*TokenClaims, error)
}

// TokenClaims is the claim set carried by both token classes. SessionID is
// omitted on single-purpose tokens (email verification, password reset).
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id,omitempty"`
}

// TokenService signs and validates JWTs. It is stateless beyond its
// configuration: secrets, algorithm and TTLs.
type TokenService struct {
	method        jwt.SigningMethod
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(algorithm, accessSecret, refreshSecret string, accessMinutes, refreshDays int) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("JWT algorithm %s is not an HMAC method", algorithm)
	}

	return &TokenService{
		method:        method,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  time.Duration(accessMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshDays) * 24 * time.Hour,
	}, nil
}

// IssueAccessToken signs a short-lived access token. Pass an empty sessionID
// for single-purpose tokens.
func (ts *TokenService) IssueAccessToken(userID, email, sessionID string) (string, error) {
	return ts.issue(userID, email, sessionID, ts.accessSecret, ts.accessExpiry, "Failed to create access token!")
}

// IssueRefreshToken signs a longer-lived refresh token.
func (ts *TokenService) IssueRefreshToken(userID, email, sessionID string) (string, error) {
	return ts.issue(userID, email, sessionID, ts.refreshSecret, ts.refreshExpiry, "Failed to create refresh token!")
}

func (ts *TokenService) issue(userID, email, sessionID string, secret []byte, expiry time.Duration, failMsg string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		Email:     email,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(ts.method, claims).SignedString(secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, failMsg, err)
	}

	return token, nil
}

// Verify parses and validates a token against the secret selected by
// isRefresh. Expired tokens fail with ExpiredToken, anything else with
// InvalidToken.
func (ts *TokenService) Verify(tokenString string, isRefresh bool) (*TokenClaims, error) {
	secret := ts.accessSecret
	if isRefresh {
		secret = ts.refreshSecret
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ts.keyFunc(secret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.Wrap(apperrors.KindInvalidToken, "Invalid token!", err)
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// DecodeIgnoringExpiry verifies the signature only; an expired payload still
// decodes. Used exclusively by logout so a client can end a session with an
// already-expired access token.
func (ts *TokenService) DecodeIgnoringExpiry(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &TokenClaims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, ts.keyFunc(ts.accessSecret)); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidToken, "Invalid token!", err)
	}

	return claims, nil
}

func (ts *TokenService) keyFunc(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != ts.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}
}
