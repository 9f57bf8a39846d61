package book

// AddBookInput is the payload for creating a book.
type AddBookInput struct {
	Category      string  `json:"category"`
	BookTitle     string  `json:"book_title" validate:"required"`
	BookAuthor    string  `json:"book_author" validate:"required"`
	BookPrice     float64 `json:"book_price"`
	Publisher     string  `json:"publisher"`
	PublishedDate string  `json:"published_date"`
	PageCount     int     `json:"page_count"`
	Language      string  `json:"language"`
	BookRating    float64 `json:"book_rating"`
	BookImage     string  `json:"book_image"`
}

// UpdateBookInput is the payload for updating a book. All fields overwrite
// the stored record; last write wins.
type UpdateBookInput struct {
	Category      string  `json:"category"`
	BookTitle     string  `json:"book_title"`
	BookAuthor    string  `json:"book_author"`
	BookPrice     float64 `json:"book_price"`
	Publisher     string  `json:"publisher"`
	PublishedDate string  `json:"published_date"`
	PageCount     int     `json:"page_count"`
	Language      string  `json:"language"`
	BookRating    float64 `json:"book_rating"`
	BookImage     string  `json:"book_image"`
}
