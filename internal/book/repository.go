package book

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=../mocks/mock_book_repository.go -package=mocks -mock_names Repository=MockBookRepository github.com/gowtham404/books-store-api/internal/book Repository

const booksCollection = "books"

// Repository is the persistence surface for the book module.
type Repository interface {
	Insert(ctx context.Context, b *Book) error
	FindByUser(ctx context.Context, userID string) ([]Book, error)
	FindByID(ctx context.Context, userID, bookID string) (*Book, error)
	Update(ctx context.Context, userID, bookID string, b *Book) (bool, error)
	Delete(ctx context.Context, userID, bookID string) (bool, error)
}

// MongoRepository implements Repository over the books collection.
type MongoRepository struct {
	books *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{books: db.Collection(booksCollection)}
}

func (r *MongoRepository) Insert(ctx context.Context, b *Book) error {
	if _, err := r.books.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByUser(ctx context.Context, userID string) ([]Book, error) {
	cursor, err := r.books.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := []Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, userID, bookID string) (*Book, error) {
	var b Book
	err := r.books.FindOne(ctx, bson.M{"user_id": userID, "book_id": bookID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

// Update overwrites the mutable fields of the matching book. It reports
// whether a record was modified.
func (r *MongoRepository) Update(ctx context.Context, userID, bookID string, b *Book) (bool, error) {
	update := bson.M{"$set": bson.M{
		"category":       b.Category,
		"book_title":     b.BookTitle,
		"book_author":    b.BookAuthor,
		"book_price":     b.BookPrice,
		"publisher":      b.Publisher,
		"published_date": b.PublishedDate,
		"page_count":     b.PageCount,
		"language":       b.Language,
		"book_rating":    b.BookRating,
		"book_image":     b.BookImage,
		"updated_at":     b.UpdatedAt,
	}}

	res, err := r.books.UpdateOne(ctx, bson.M{"user_id": userID, "book_id": bookID}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update book: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// Delete removes the matching book and reports whether anything was deleted.
func (r *MongoRepository) Delete(ctx context.Context, userID, bookID string) (bool, error) {
	res, err := r.books.DeleteOne(ctx, bson.M{"user_id": userID, "book_id": bookID})
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return res.DeletedCount > 0, nil
}
