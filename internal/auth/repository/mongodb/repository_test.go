package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
	"github.com/gowtham404/books-store-api/internal/auth/repository/mongodb"
)

func TestUserRepositoryFindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		expected := bson.D{
			{Key: "user_id", Value: "USER1"},
			{Key: "name", Value: "John"},
			{Key: "email", Value: "john@example.com"},
			{Key: "password", Value: "hashed"},
			{Key: "is_verified", Value: true},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.users", mtest.FirstBatch, expected))

		repo := mongodb.NewUserRepository(mt.DB)
		user, err := repo.FindByEmail(context.Background(), "john@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, "USER1", user.UserID)
		assert.True(mt, user.IsVerified)
	})

	mt.Run("absent returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		repo := mongodb.NewUserRepository(mt.DB)
		user, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := mongodb.NewUserRepository(mt.DB)
		err := repo.Create(context.Background(), &domain.User{UserID: "USER1", Email: "john@example.com"})
		assert.NoError(mt, err)
	})

	mt.Run("write failure surfaces", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Code: 11000, Message: "duplicate key"}))

		repo := mongodb.NewUserRepository(mt.DB)
		err := repo.Create(context.Background(), &domain.User{UserID: "USER1", Email: "john@example.com"})
		assert.Error(mt, err)
	})
}

func TestUserRepositoryMarkVerified(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		repo := mongodb.NewUserRepository(mt.DB)
		err := repo.MarkVerified(context.Background(), "USER1", "john@example.com")
		assert.NoError(mt, err)
	})
}

func TestSessionRepositoryExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("live session", func(mt *mtest.T) {
		session := bson.D{
			{Key: "session_id", Value: "SESSION1"},
			{Key: "user_id", Value: "USER1"},
			{Key: "email", Value: "john@example.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.user_sessions", mtest.FirstBatch, session))

		repo := mongodb.NewSessionRepository(mt.DB)
		active, err := repo.Exists(context.Background(), "SESSION1")
		require.NoError(mt, err)
		assert.True(mt, active)
	})

	mt.Run("revoked session", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.user_sessions", mtest.FirstBatch))

		repo := mongodb.NewSessionRepository(mt.DB)
		active, err := repo.Exists(context.Background(), "SESSION1")
		require.NoError(mt, err)
		assert.False(mt, active)
	})
}

func TestSessionRepositoryDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete is idempotent", func(mt *mtest.T) {
		// Zero deletions still acknowledge cleanly.
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		repo := mongodb.NewSessionRepository(mt.DB)
		err := repo.Delete(context.Background(), "USER1", "SESSION1")
		assert.NoError(mt, err)
	})
}

func TestRefreshTokenRepositoryReplace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete then insert", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		repo := mongodb.NewRefreshTokenRepository(mt.DB)
		record := &domain.RefreshTokenRecord{UserID: "USER1", Email: "john@example.com", RefreshToken: "refresh-token"}
		err := repo.Replace(context.Background(), record)
		assert.NoError(mt, err)
	})
}

func TestRefreshTokenRepositoryFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		stored := bson.D{
			{Key: "user_id", Value: "USER1"},
			{Key: "email", Value: "john@example.com"},
			{Key: "refresh_token", Value: "refresh-token"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.refresh_tokens", mtest.FirstBatch, stored))

		repo := mongodb.NewRefreshTokenRepository(mt.DB)
		record, err := repo.Find(context.Background(), "USER1", "john@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, record)
		assert.Equal(mt, "refresh-token", record.RefreshToken)
	})

	mt.Run("absent returns nil without error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.refresh_tokens", mtest.FirstBatch))

		repo := mongodb.NewRefreshTokenRepository(mt.DB)
		record, err := repo.Find(context.Background(), "USER1", "john@example.com")
		require.NoError(mt, err)
		assert.Nil(mt, record)
	})
}
