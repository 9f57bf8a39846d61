package service

import (
	"context"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
	"github.com/gowtham404/books-store-api/pkg/keygen"
)

// SessionManager correlates session identifiers with users. A session record
// is the revocation point for every token that carries its id.
type SessionManager struct {
	sessions domain.SessionRepository
}

func NewSessionManager(sessions domain.SessionRepository) *SessionManager {
	return &SessionManager{sessions: sessions}
}

// Open creates a session for user and returns the generated session id.
// Uniqueness relies on the key generator; collisions are not defended
// against.
func (sm *SessionManager) Open(ctx context.Context, user *domain.User) (string, error) {
	sessionID, err := keygen.NewKey()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Failed to create user session!", err)
	}

	session := &domain.Session{
		SessionID: sessionID,
		UserID:    user.UserID,
		Email:     user.Email,
	}
	if err := sm.sessions.Insert(ctx, session); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Failed to create user session!", err)
	}

	return sessionID, nil
}

// IsActive reports whether any session with the given id exists.
func (sm *SessionManager) IsActive(ctx context.Context, sessionID string) (bool, error) {
	return sm.sessions.Exists(ctx, sessionID)
}

// IsActiveForUser reports whether the session exists for the specific user.
func (sm *SessionManager) IsActiveForUser(ctx context.Context, userID, sessionID string) (bool, error) {
	return sm.sessions.ExistsForUser(ctx, userID, sessionID)
}

// Close deletes the session. Closing a session that does not exist is not an
// error.
func (sm *SessionManager) Close(ctx context.Context, userID, sessionID string) error {
	return sm.sessions.Delete(ctx, userID, sessionID)
}
