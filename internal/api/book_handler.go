package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/digital-product-store/product/internal/service"
)

var validate = validator.New()

// BookHandler handles HTTP requests for catalog entries
type BookHandler struct {
	bookService *service.BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// CreateBookRequest is the request body for creating a book
type CreateBookRequest struct {
	UploadID string          `json:"upload_id" validate:"required,uuid"`
	BookName string          `json:"book_name" validate:"required,max=64"`
	Author   string          `json:"author" validate:"required,max=64"`
	Summary  string          `json:"summary" validate:"required,max=64"`
	Price    decimal.Decimal `json:"price"`
}

// BookCreatedResponse echoes the created book including its new id
type BookCreatedResponse struct {
	ID       string          `json:"id"`
	UploadID string          `json:"upload_id"`
	BookName string          `json:"book_name"`
	Author   string          `json:"author"`
	Summary  string          `json:"summary"`
	Price    decimal.Decimal `json:"price"`
}

// BookListing is the public projection of a book
type BookListing struct {
	ID       string          `json:"id"`
	BookName string          `json:"book_name"`
	Author   string          `json:"author"`
	Summary  string          `json:"summary"`
	Price    decimal.Decimal `json:"price"`
}

// BookDetailResponse combines a book with its upload record
type BookDetailResponse struct {
	ID           string          `json:"id"`
	UploadID     string          `json:"upload_id"`
	ObjectID     string          `json:"object_id"`
	OriginalName string          `json:"original_name"`
	BookName     string          `json:"book_name"`
	Author       string          `json:"author"`
	Summary      string          `json:"summary"`
	Price        decimal.Decimal `json:"price"`
}

// CreateBook creates a new catalog entry referencing an upload
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_body", "malformed request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	uploadID, err := uuid.Parse(req.UploadID)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid_upload_id", "upload_id must be a UUID")
		return
	}

	book, err := h.bookService.CreateBook(
		r.Context(),
		uploadID,
		req.BookName,
		req.Author,
		req.Summary,
		req.Price,
	)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookCreatedResponse{
		ID:       book.ID.String(),
		UploadID: book.UploadID.String(),
		BookName: book.BookName,
		Author:   book.Author,
		Summary:  book.Summary,
		Price:    book.Price,
	})
}

// ListBooks returns every book as a public listing
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	listings := make([]BookListing, 0, len(books))
	for _, book := range books {
		listings = append(listings, BookListing{
			ID:       book.ID.String(),
			BookName: book.BookName,
			Author:   book.Author,
			Summary:  book.Summary,
			Price:    book.Price,
		})
	}

	render.JSON(w, r, listings)
}

// GetBookDetail returns one book joined with the upload it references.
// An id that does not parse as a UUID cannot match any book, so it is
// reported as not found rather than a client error.
func (h *BookHandler) GetBookDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "not_found", "book not found")
		return
	}

	book, upload, err := h.bookService.GetBookDetail(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, BookDetailResponse{
		ID:           book.ID.String(),
		UploadID:     book.UploadID.String(),
		ObjectID:     upload.ObjectID.String(),
		OriginalName: upload.OriginalName,
		BookName:     book.BookName,
		Author:       book.Author,
		Summary:      book.Summary,
		Price:        book.Price,
	})
}
