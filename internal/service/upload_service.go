package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
	"github.com/digital-product-store/product/internal/storage"
)

// UploadService orchestrates the two-phase upload write: the blob goes to
// the object store first, then the linking row is inserted. The two
// writes are not atomic with each other; a failure between them leaves an
// orphaned blob, which is logged and otherwise accepted.
type UploadService struct {
	uploadRepo repository.UploadRepository
	store      storage.Backend
}

// NewUploadService creates a new upload service
func NewUploadService(uploadRepo repository.UploadRepository, store storage.Backend) *UploadService {
	return &UploadService{
		uploadRepo: uploadRepo,
		store:      store,
	}
}

// CreateUpload stores the content stream under a freshly generated object
// key and records an upload row referencing it. Both identifiers are
// generated here, independently of each other.
func (s *UploadService) CreateUpload(ctx context.Context, originalName string, content io.Reader) (*domain.Upload, error) {
	upload := &domain.Upload{
		ID:           uuid.New(),
		ObjectID:     uuid.New(),
		OriginalName: originalName,
	}

	if err := s.store.Upload(ctx, upload.ObjectID.String(), content); err != nil {
		return nil, fmt.Errorf("failed to store object %s: %w", upload.ObjectID, err)
	}

	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		// The blob is already written; nothing reconciles it.
		slog.Warn("orphaned object left in store after failed upload insert",
			"object_id", upload.ObjectID, "error", err)
		return nil, fmt.Errorf("failed to record upload %s: %w", upload.ID, err)
	}

	return upload, nil
}
