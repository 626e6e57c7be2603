package storage

import (
	"context"
	"io"
)

// Backend defines the interface for object storage backends. The catalog
// only ever writes a blob once under a caller-generated key and reads it
// back; there is no delete or versioning path.
type Backend interface {
	// Upload stores the content read from reader under objectKey
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download returns the content stored under objectKey
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)
}
