package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
)

// UploadRepository is an in-memory implementation of repository.UploadRepository
type UploadRepository struct {
	mu      sync.RWMutex
	uploads map[uuid.UUID]*domain.Upload
}

// NewUploadRepository creates a new in-memory upload repository
func NewUploadRepository() *UploadRepository {
	return &UploadRepository{
		uploads: make(map[uuid.UUID]*domain.Upload),
	}
}

// Create adds a new upload to the repository
func (r *UploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.uploads[upload.ID]; exists {
		return repository.ErrAlreadyExists
	}

	stored := *upload
	r.uploads[upload.ID] = &stored
	return nil
}

func (r *UploadRepository) get(id uuid.UUID) (*domain.Upload, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	upload, exists := r.uploads[id]
	if !exists {
		return nil, false
	}

	u := *upload
	return &u, true
}
