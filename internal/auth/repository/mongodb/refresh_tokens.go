package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

// RefreshTokenRepository persists the latest refresh token per user.
type RefreshTokenRepository struct {
	tokens *mongo.Collection
}

func NewRefreshTokenRepository(db *mongo.Database) *RefreshTokenRepository {
	return &RefreshTokenRepository{tokens: db.Collection(refreshTokensCollection)}
}

// Replace drops any refresh-token record for the (user_id, email) pair and
// inserts the new one, so only the most recent login's token is honored.
func (r *RefreshTokenRepository) Replace(ctx context.Context, record *domain.RefreshTokenRecord) error {
	filter := bson.M{"user_id": record.UserID, "email": record.Email}
	if _, err := r.tokens.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	if _, err := r.tokens.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// Find returns the stored refresh-token record for the pair, or nil.
func (r *RefreshTokenRepository) Find(ctx context.Context, userID, email string) (*domain.RefreshTokenRecord, error) {
	var record domain.RefreshTokenRecord
	err := r.tokens.FindOne(ctx, bson.M{"user_id": userID, "email": email}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &record, nil
}

// Delete removes the record for the pair; absent records are not an error.
func (r *RefreshTokenRepository) Delete(ctx context.Context, userID, email string) error {
	if _, err := r.tokens.DeleteOne(ctx, bson.M{"user_id": userID, "email": email}); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
