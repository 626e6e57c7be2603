package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
)

// BookRepository is an in-memory implementation of repository.BookRepository.
// It holds a reference to the upload repository so the foreign-key
// relationship and the detail join behave like the relational store.
type BookRepository struct {
	mu      sync.RWMutex
	books   map[uuid.UUID]*domain.Book
	uploads *UploadRepository
}

// NewBookRepository creates a new in-memory book repository
func NewBookRepository(uploads *UploadRepository) *BookRepository {
	return &BookRepository{
		books:   make(map[uuid.UUID]*domain.Book),
		uploads: uploads,
	}
}

// Create adds a new book to the repository
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	if _, ok := r.uploads.get(book.UploadID); !ok {
		return repository.ErrUploadNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[book.ID]; exists {
		return repository.ErrAlreadyExists
	}

	stored := *book
	r.books[book.ID] = &stored
	return nil
}

// List returns every book
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*domain.Book, 0, len(r.books))
	for _, book := range r.books {
		b := *book
		books = append(books, &b)
	}

	return books, nil
}

// GetWithUpload returns a book together with the upload it references
func (r *BookRepository) GetWithUpload(ctx context.Context, id uuid.UUID) (*domain.Book, *domain.Upload, error) {
	r.mu.RLock()
	book, exists := r.books[id]
	if exists {
		b := *book
		book = &b
	}
	r.mu.RUnlock()

	if !exists {
		return nil, nil, repository.ErrBookNotFound
	}

	upload, ok := r.uploads.get(book.UploadID)
	if !ok {
		return nil, nil, repository.ErrUploadNotFound
	}

	return book, upload, nil
}
