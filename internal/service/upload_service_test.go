package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-product-store/product/internal/domain"
	memoryrepo "github.com/digital-product-store/product/internal/repository/memory"
	"github.com/digital-product-store/product/internal/service"
	memorystorage "github.com/digital-product-store/product/internal/storage/memory"
)

// failingBackend always fails the blob write
type failingBackend struct{}

func (failingBackend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	return errors.New("storage unavailable")
}

func (failingBackend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return nil, errors.New("storage unavailable")
}

// failingUploadRepo always fails the metadata insert
type failingUploadRepo struct{}

func (failingUploadRepo) Create(ctx context.Context, upload *domain.Upload) error {
	return errors.New("connection lost")
}

func TestUploadService_CreateUpload(t *testing.T) {
	ctx := context.Background()
	store := memorystorage.NewMemoryBackend()
	svc := service.NewUploadService(memoryrepo.NewUploadRepository(), store)

	data := []byte("PNGDATA")
	upload, err := svc.CreateUpload(ctx, "cover.png", bytes.NewReader(data))
	require.NoError(t, err)

	assert.NotEqual(t, upload.ID, upload.ObjectID)
	assert.Equal(t, "cover.png", upload.OriginalName)

	// The blob must be readable under the generated object key
	rc, err := store.Download(ctx, upload.ObjectID.String())
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestUploadService_CreateUpload_DistinctTokens(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUploadService(memoryrepo.NewUploadRepository(), memorystorage.NewMemoryBackend())

	first, err := svc.CreateUpload(ctx, "a.pdf", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	second, err := svc.CreateUpload(ctx, "b.pdf", bytes.NewReader([]byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ObjectID, second.ObjectID)
}

func TestUploadService_CreateUpload_StoreFailure(t *testing.T) {
	ctx := context.Background()
	uploads := memoryrepo.NewUploadRepository()
	books := memoryrepo.NewBookRepository(uploads)
	svc := service.NewUploadService(uploads, failingBackend{})

	upload, err := svc.CreateUpload(ctx, "cover.png", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
	assert.Nil(t, upload)

	// The metadata repository must not have been touched: no upload row
	// exists for any book to reference.
	list, err := books.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUploadService_CreateUpload_InsertFailure(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUploadService(failingUploadRepo{}, memorystorage.NewMemoryBackend())

	upload, err := svc.CreateUpload(ctx, "cover.png", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
	assert.Nil(t, upload)
}
