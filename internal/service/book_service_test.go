package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-product-store/product/internal/domain"
	"github.com/digital-product-store/product/internal/repository"
	memoryrepo "github.com/digital-product-store/product/internal/repository/memory"
	"github.com/digital-product-store/product/internal/service"
	memorystorage "github.com/digital-product-store/product/internal/storage/memory"
)

func setupBookService(t *testing.T) (*service.BookService, *domain.Upload) {
	t.Helper()

	uploads := memoryrepo.NewUploadRepository()
	books := memoryrepo.NewBookRepository(uploads)
	uploadSvc := service.NewUploadService(uploads, memorystorage.NewMemoryBackend())

	upload, err := uploadSvc.CreateUpload(context.Background(), "cover.png", bytes.NewReader([]byte("PNGDATA")))
	require.NoError(t, err)

	return service.NewBookService(books), upload
}

func TestBookService_CreateBook(t *testing.T) {
	svc, upload := setupBookService(t)
	ctx := context.Background()

	price := decimal.RequireFromString("12.50")
	book, err := svc.CreateBook(ctx, upload.ID, "Dune", "Herbert", "Desert planet", price)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, upload.ID, book.UploadID)
	assert.Equal(t, "Dune", book.BookName)
	assert.Equal(t, "Herbert", book.Author)
	assert.True(t, price.Equal(book.Price))
}

func TestBookService_CreateBook_UnknownUpload(t *testing.T) {
	svc, _ := setupBookService(t)

	_, err := svc.CreateBook(context.Background(), uuid.New(), "Dune", "Herbert", "", decimal.Zero)
	assert.ErrorIs(t, err, repository.ErrUploadNotFound)
}

func TestBookService_ListBooks(t *testing.T) {
	svc, upload := setupBookService(t)
	ctx := context.Background()

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	want := map[uuid.UUID]bool{}
	for _, name := range []string{"Dune", "Hyperion"} {
		book, err := svc.CreateBook(ctx, upload.ID, name, "someone", "summary", decimal.New(10, 0))
		require.NoError(t, err)
		want[book.ID] = true
	}

	books, err = svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
	for _, book := range books {
		assert.True(t, want[book.ID])
	}
}

func TestBookService_GetBookDetail(t *testing.T) {
	svc, upload := setupBookService(t)
	ctx := context.Background()

	created, err := svc.CreateBook(ctx, upload.ID, "Dune", "Herbert", "Desert planet", decimal.RequireFromString("12.50"))
	require.NoError(t, err)

	book, gotUpload, err := svc.GetBookDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, book.ID)
	assert.Equal(t, upload.ObjectID, gotUpload.ObjectID)
	assert.Equal(t, "cover.png", gotUpload.OriginalName)
}

func TestBookService_GetBookDetail_NotFound(t *testing.T) {
	svc, _ := setupBookService(t)

	_, _, err := svc.GetBookDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}

func TestBookService_GetBookDetail_Idempotent(t *testing.T) {
	svc, upload := setupBookService(t)
	ctx := context.Background()

	created, err := svc.CreateBook(ctx, upload.ID, "Dune", "Herbert", "Desert planet", decimal.RequireFromString("12.50"))
	require.NoError(t, err)

	first, _, err := svc.GetBookDetail(ctx, created.ID)
	require.NoError(t, err)
	second, _, err := svc.GetBookDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
