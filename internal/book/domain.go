// Package book implements the user-owned book CRUD module. Every operation
// filters by the authenticated user's id.
package book

import "time"

// Book is a stored book record owned by a user.
type Book struct {
	UserID        string    `bson:"user_id" json:"user_id"`
	BookID        string    `bson:"book_id" json:"book_id"`
	Category      string    `bson:"category" json:"category"`
	BookTitle     string    `bson:"book_title" json:"book_title"`
	BookAuthor    string    `bson:"book_author" json:"book_author"`
	BookPrice     float64   `bson:"book_price" json:"book_price"`
	Publisher     string    `bson:"publisher" json:"publisher"`
	PublishedDate string    `bson:"published_date" json:"published_date"`
	PageCount     int       `bson:"page_count" json:"page_count"`
	Language      string    `bson:"language" json:"language"`
	BookRating    float64   `bson:"book_rating" json:"book_rating"`
	BookImage     string    `bson:"book_image" json:"book_image"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
