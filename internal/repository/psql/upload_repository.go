package psql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
)

// UploadRepository is a PostgreSQL implementation of repository.UploadRepository
type UploadRepository struct {
	BaseRepository
}

// NewUploadRepository creates a new PostgreSQL upload repository
func NewUploadRepository(db DBTX) *UploadRepository {
	return &UploadRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a single upload row. Uploads are write-once, so there
// is no corresponding update or delete.
func (r *UploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	query := `
		INSERT INTO uploads (id, object_id, original_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, upload.ID, upload.ObjectID, upload.OriginalName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("upload %s: %w", upload.ID, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert upload: %w", err)
	}

	return nil
}
