package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/digital-product-store/product/internal/domain"
)

var (
	// ErrBookNotFound indicates a book was not found
	ErrBookNotFound = errors.New("book not found")

	// ErrUploadNotFound indicates a book referenced an upload that does not exist
	ErrUploadNotFound = errors.New("upload not found")

	// ErrAlreadyExists indicates an insert violated a uniqueness constraint
	ErrAlreadyExists = errors.New("record already exists")
)

// UploadRepository defines the interface for upload row operations
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
}

// BookRepository defines the interface for book row operations
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	List(ctx context.Context) ([]*domain.Book, error)
	GetWithUpload(ctx context.Context, id uuid.UUID) (*domain.Book, *domain.Upload, error)
}
