package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham404/books-store-api/internal/book"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
	"github.com/gowtham404/books-store-api/internal/mocks"
)

func validAddInput() book.AddBookInput {
	return book.AddBookInput{
		Category:      "Fiction",
		BookTitle:     "The Go Programming Language",
		BookAuthor:    "Alan A. A. Donovan",
		BookPrice:     39.99,
		Publisher:     "Addison-Wesley",
		PublishedDate: "2015-11-16",
		PageCount:     380,
		Language:      "English",
		BookRating:    4.7,
		BookImage:     "https://example.com/gopl.jpg",
	}
}

func TestAddBookSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	input := validAddInput()

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *book.Book) error {
			assert.Equal(t, "user-1", b.UserID)
			assert.Len(t, b.BookID, 20)
			assert.Equal(t, input.BookTitle, b.BookTitle)
			assert.Equal(t, b.CreatedAt, b.UpdatedAt)
			return nil
		})

	added, err := s.Add(context.Background(), "user-1", input)
	require.NoError(t, err)
	assert.Equal(t, "user-1", added.UserID)
	assert.NotEmpty(t, added.BookID)
}

func TestAddBookMissingRequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	input := validAddInput()
	input.BookTitle = ""

	_, err := s.Add(context.Background(), "user-1", input)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddBookInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := s.Add(context.Background(), "user-1", validAddInput())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestGetAllBooksReturnsEmptySlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().FindByUser(gomock.Any(), "user-1").Return([]book.Book{}, nil)

	books, err := s.GetAll(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestGetBookByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().FindByID(gomock.Any(), "user-1", "missing").Return(nil, nil)

	_, err := s.GetByID(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestGetBookByIDSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	stored := &book.Book{UserID: "user-1", BookID: "BOOK1", BookTitle: "Dune"}
	mockRepo.EXPECT().FindByID(gomock.Any(), "user-1", "BOOK1").Return(stored, nil)

	got, err := s.GetByID(context.Background(), "user-1", "BOOK1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestUpdateBookNoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().Update(gomock.Any(), "user-1", "BOOK1", gomock.Any()).Return(false, nil)

	_, err := s.Update(context.Background(), "user-1", "BOOK1", book.UpdateBookInput{BookTitle: "Dune"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Book not found or no changes made", apperrors.MessageOf(err))
}

func TestUpdateBookSuccessReturnsFreshRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	updated := &book.Book{UserID: "user-1", BookID: "BOOK1", BookTitle: "Dune Messiah"}
	mockRepo.EXPECT().Update(gomock.Any(), "user-1", "BOOK1", gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().FindByID(gomock.Any(), "user-1", "BOOK1").Return(updated, nil)

	got, err := s.Update(context.Background(), "user-1", "BOOK1", book.UpdateBookInput{BookTitle: "Dune Messiah"})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.BookTitle)
}

func TestDeleteBookNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().Delete(gomock.Any(), "user-1", "missing").Return(false, nil)

	err := s.Delete(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestDeleteBookSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	s := book.NewService(mockRepo)

	mockRepo.EXPECT().Delete(gomock.Any(), "user-1", "BOOK1").Return(true, nil)

	err := s.Delete(context.Background(), "user-1", "BOOK1")
	assert.NoError(t, err)
}
