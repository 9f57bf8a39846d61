package book_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham404/books-store-api/internal/auth/handler"
	"github.com/gowtham404/books-store-api/internal/auth/service"
	"github.com/gowtham404/books-store-api/internal/book"
	"github.com/gowtham404/books-store-api/internal/mocks"
)

type bookTestEnv struct {
	app      *fiber.App
	repo     *mocks.MockBookRepository
	tokens   *mocks.MockTokenGenerator
	sessions *mocks.MockSessionRepository
}

func newBookTestEnv(t *testing.T) *bookTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &bookTestEnv{
		repo:     mocks.NewMockBookRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
	}

	gate := handler.NewAuthGate(env.tokens, service.NewSessionManager(env.sessions))
	env.app = fiber.New()
	book.RegisterRoutes(env.app, book.NewHandler(book.NewService(env.repo)), gate)
	return env
}

// expectAuth wires the gate to accept "Bearer access-token" for user-1.
func (env *bookTestEnv) expectAuth() {
	claims := &service.TokenClaims{UserID: "user-1", Email: "john@example.com", SessionID: "session-1"}
	env.tokens.EXPECT().Verify("access-token", false).Return(claims, nil)
	env.sessions.EXPECT().Exists(gomock.Any(), "session-1").Return(true, nil)
}

func authorizedRequest(method, target string, payload any) *http.Request {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer access-token")
	return req
}

func TestAddBookEndpoint(t *testing.T) {
	env := newBookTestEnv(t)
	env.expectAuth()

	input := validAddInput()
	env.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *book.Book) error {
			assert.Equal(t, "user-1", b.UserID)
			return nil
		})

	resp, err := env.app.Test(authorizedRequest("POST", "/api/v1/book/add-book", input))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Book added successfully.", body["message"])
	assert.NotNil(t, body["book"])
}

func TestGetAllBooksEndpoint(t *testing.T) {
	env := newBookTestEnv(t)
	env.expectAuth()

	stored := []book.Book{{UserID: "user-1", BookID: "BOOK1", BookTitle: "Dune"}}
	env.repo.EXPECT().FindByUser(gomock.Any(), "user-1").Return(stored, nil)

	resp, err := env.app.Test(authorizedRequest("GET", "/api/v1/book/all-books", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "All the books fetched successfully.", body["message"])
	assert.Len(t, body["books"], 1)
}

func TestGetOneBookEndpointNotFound(t *testing.T) {
	env := newBookTestEnv(t)
	env.expectAuth()

	env.repo.EXPECT().FindByID(gomock.Any(), "user-1", "missing").Return(nil, nil)

	resp, err := env.app.Test(authorizedRequest("GET", "/api/v1/book/one-book/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Book not found", body["message"])
}

func TestUpdateBookEndpoint(t *testing.T) {
	env := newBookTestEnv(t)
	env.expectAuth()

	updated := &book.Book{UserID: "user-1", BookID: "BOOK1", BookTitle: "Dune Messiah"}
	env.repo.EXPECT().Update(gomock.Any(), "user-1", "BOOK1", gomock.Any()).Return(true, nil)
	env.repo.EXPECT().FindByID(gomock.Any(), "user-1", "BOOK1").Return(updated, nil)

	resp, err := env.app.Test(authorizedRequest("PUT", "/api/v1/book/update-book/BOOK1", book.UpdateBookInput{BookTitle: "Dune Messiah"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeleteBookEndpoint(t *testing.T) {
	env := newBookTestEnv(t)
	env.expectAuth()

	env.repo.EXPECT().Delete(gomock.Any(), "user-1", "BOOK1").Return(true, nil)

	resp, err := env.app.Test(authorizedRequest("DELETE", "/api/v1/book/delete-book/BOOK1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBookRoutesRequireToken(t *testing.T) {
	env := newBookTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/v1/book/all-books", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Token is missing", body["message"])
}
