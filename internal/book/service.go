package book

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/gowtham404/books-store-api/internal/errors"
	"github.com/gowtham404/books-store-api/pkg/keygen"
)

// Service implements the book use-cases, scoped to the owning user.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) Add(ctx context.Context, userID string, input AddBookInput) (*Book, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.ErrAllFieldsRequired
	}

	bookID, err := keygen.NewKey()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to add book", err)
	}

	now := time.Now().UTC()
	b := &Book{
		UserID:        userID,
		BookID:        bookID,
		Category:      input.Category,
		BookTitle:     input.BookTitle,
		BookAuthor:    input.BookAuthor,
		BookPrice:     input.BookPrice,
		Publisher:     input.Publisher,
		PublishedDate: input.PublishedDate,
		PageCount:     input.PageCount,
		Language:      input.Language,
		BookRating:    input.BookRating,
		BookImage:     input.BookImage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to add book", err)
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context, userID string) ([]Book, error) {
	books, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to fetch books", err)
	}
	return books, nil
}

func (s *Service) GetByID(ctx context.Context, userID, bookID string) (*Book, error) {
	b, err := s.repo.FindByID(ctx, userID, bookID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to fetch book", err)
	}
	if b == nil {
		return nil, apperrors.ErrBookNotFound
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, userID, bookID string, input UpdateBookInput) (*Book, error) {
	b := &Book{
		Category:      input.Category,
		BookTitle:     input.BookTitle,
		BookAuthor:    input.BookAuthor,
		BookPrice:     input.BookPrice,
		Publisher:     input.Publisher,
		PublishedDate: input.PublishedDate,
		PageCount:     input.PageCount,
		Language:      input.Language,
		BookRating:    input.BookRating,
		BookImage:     input.BookImage,
		UpdatedAt:     time.Now().UTC(),
	}

	modified, err := s.repo.Update(ctx, userID, bookID, b)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to update book", err)
	}
	if !modified {
		return nil, apperrors.New(apperrors.KindNotFound, "Book not found or no changes made")
	}

	updated, err := s.repo.FindByID(ctx, userID, bookID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to fetch book", err)
	}
	if updated == nil {
		return nil, apperrors.ErrBookNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, bookID string) error {
	deleted, err := s.repo.Delete(ctx, userID, bookID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Failed to delete book", err)
	}
	if !deleted {
		return apperrors.ErrBookNotFound
	}
	return nil
}
