package psql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
)

// Postgres error codes checked by the repositories.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BookRepository is a PostgreSQL implementation of repository.BookRepository
type BookRepository struct {
	BaseRepository
}

// NewBookRepository creates a new PostgreSQL book repository
func NewBookRepository(db DBTX) *BookRepository {
	return &BookRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a single book row. The upload_id foreign key is
// enforced by the store; a violation is reported as
// repository.ErrUploadNotFound.
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (id, upload_id, book_name, author, summary, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		book.ID,
		book.UploadID,
		book.BookName,
		book.Author,
		book.Summary,
		book.Price,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return fmt.Errorf("upload %s: %w", book.UploadID, repository.ErrUploadNotFound)
			case pgUniqueViolation:
				return fmt.Errorf("book %s: %w", book.ID, repository.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

// List returns every book row. No pagination; ordering is left to the store.
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	query := `
		SELECT id, upload_id, book_name, author, summary, price
		FROM books
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		book := &domain.Book{}
		if err := rows.Scan(
			&book.ID,
			&book.UploadID,
			&book.BookName,
			&book.Author,
			&book.Summary,
			&book.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// GetWithUpload returns a book together with the upload it references,
// joined on books.upload_id = uploads.id.
func (r *BookRepository) GetWithUpload(ctx context.Context, id uuid.UUID) (*domain.Book, *domain.Upload, error) {
	query := `
		SELECT
			b.id, b.upload_id, b.book_name, b.author, b.summary, b.price,
			u.id, u.object_id, u.original_name
		FROM books b
		JOIN uploads u ON b.upload_id = u.id
		WHERE b.id = $1
	`

	book := &domain.Book{}
	upload := &domain.Upload{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.UploadID,
		&book.BookName,
		&book.Author,
		&book.Summary,
		&book.Price,
		&upload.ID,
		&upload.ObjectID,
		&upload.OriginalName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("book %s: %w", id, repository.ErrBookNotFound)
		}
		return nil, nil, err
	}

	return book, upload, nil
}
