package storage

import (
	"context"
	"io"
)

// Storage abstracts blob storage for facility photos.
type Storage interface {
	// Save writes content at the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the blob at the given relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob at the given relative path. Missing blobs are
	// not an error.
	Delete(ctx context.Context, path string) error
}
