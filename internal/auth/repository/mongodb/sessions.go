package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

// SessionRepository persists active login sessions.
type SessionRepository struct {
	sessions *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{sessions: db.Collection(userSessionsCollection)}
}

func (r *SessionRepository) Insert(ctx context.Context, session *domain.Session) error {
	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	err := r.sessions.FindOne(ctx, bson.M{"session_id": sessionID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up session: %w", err)
	}
	return true, nil
}

func (r *SessionRepository) ExistsForUser(ctx context.Context, userID, sessionID string) (bool, error) {
	err := r.sessions.FindOne(ctx, bson.M{"user_id": userID, "session_id": sessionID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up session: %w", err)
	}
	return true, nil
}

// Delete removes the session record. Deleting a session that does not exist
// is not an error.
func (r *SessionRepository) Delete(ctx context.Context, userID, sessionID string) error {
	if _, err := r.sessions.DeleteOne(ctx, bson.M{"user_id": userID, "session_id": sessionID}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
