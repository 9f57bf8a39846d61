package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

// UserRepository persists user account records.
type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection(usersCollection)}
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// FindByIDAndEmail returns the user matching both keys, or nil when absent.
func (r *UserRepository) FindByIDAndEmail(ctx context.Context, userID, email string) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"user_id": userID, "email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id and email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, userID, email string) error {
	update := bson.M{"$set": bson.M{"is_verified": true, "updated_at": time.Now().UTC()}}
	if _, err := r.users.UpdateOne(ctx, bson.M{"user_id": userID, "email": email}, update); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, email, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "updated_at": time.Now().UTC()}}
	if _, err := r.users.UpdateOne(ctx, bson.M{"user_id": userID, "email": email}, update); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
