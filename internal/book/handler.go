package book

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gowtham404/books-store-api/internal/auth/handler"
	apperrors "github.com/gowtham404/books-store-api/internal/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AddBook(c *fiber.Ctx) error {
	claims := handler.ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	var input AddBookInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrAllFieldsRequired)
	}

	added, err := h.service.Add(c.Context(), claims.UserID, input)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Book added successfully.",
		"book":    added,
	})
}

func (h *Handler) GetAllBooks(c *fiber.Ctx) error {
	claims := handler.ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	books, err := h.service.GetAll(c.Context(), claims.UserID)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "All the books fetched successfully.",
		"books":   books,
	})
}

func (h *Handler) GetBookByID(c *fiber.Ctx) error {
	claims := handler.ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	b, err := h.service.GetByID(c.Context(), claims.UserID, c.Params("book_id"))
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Book fetched successfully.",
		"book":    b,
	})
}

func (h *Handler) UpdateBook(c *fiber.Ctx) error {
	claims := handler.ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	var input UpdateBookInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, apperrors.ErrAllFieldsRequired)
	}

	updated, err := h.service.Update(c.Context(), claims.UserID, c.Params("book_id"), input)
	if err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Book updated successfully.",
		"book":    updated,
	})
}

func (h *Handler) DeleteBook(c *fiber.Ctx) error {
	claims := handler.ClaimsFromContext(c)
	if claims == nil {
		return failJSON(c, apperrors.ErrTokenMissing)
	}

	if err := h.service.Delete(c.Context(), claims.UserID, c.Params("book_id")); err != nil {
		return failJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Book deleted successfully.",
	})
}

// RegisterRoutes mounts the book endpoints. Every route requires an
// access-class token with a live session.
func RegisterRoutes(app *fiber.App, h *Handler, gate *handler.AuthGate) {
	books := app.Group("/api/v1/book", gate.TokenRequired(false))

	books.Post("/add-book", h.AddBook)
	books.Get("/all-books", h.GetAllBooks)
	books.Get("/one-book/:book_id", h.GetBookByID)
	books.Put("/update-book/:book_id", h.UpdateBook)
	books.Delete("/delete-book/:book_id", h.DeleteBook)
}

func failJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"status":  "failed",
		"message": apperrors.MessageOf(err),
	})
}
