package port

import (
	"context"
	"io"
	"time"
)

type BlobInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// BlobStore is the substrate under the asset store. Keys are slash
// separated and relative to the store root.
type BlobStore interface {
	// Prepare makes the location for prefix ready. It is idempotent.
	Prepare(ctx context.Context, prefix string) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Remove reports false with a nil error when the key does not exist.
	Remove(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]BlobInfo, error)
}
