package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
)

// BookService handles catalog entries referencing uploads
type BookService struct {
	bookRepo repository.BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{
		bookRepo: bookRepo,
	}
}

// CreateBook inserts a book row referencing an existing upload and
// returns the created record including its generated id. The store's
// foreign key is the enforcement point for the upload reference; a
// violation surfaces as repository.ErrUploadNotFound.
func (s *BookService) CreateBook(
	ctx context.Context,
	uploadID uuid.UUID,
	bookName, author, summary string,
	price decimal.Decimal,
) (*domain.Book, error) {
	book := &domain.Book{
		ID:       uuid.New(),
		UploadID: uploadID,
		BookName: bookName,
		Author:   author,
		Summary:  summary,
		Price:    price,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// ListBooks returns every book in the catalog
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.bookRepo.List(ctx)
}

// GetBookDetail returns a book together with the upload it references
func (s *BookService) GetBookDetail(ctx context.Context, id uuid.UUID) (*domain.Book, *domain.Upload, error) {
	return s.bookRepo.GetWithUpload(ctx, id)
}
