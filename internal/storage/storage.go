package storage

import (
	"context"
	"io"
)

// Storage abstracts file persistence under the media root. Paths are always
// relative, forward-slash separated; the public file-serving surface mounts
// the same root, so every stored path is directly servable.
type Storage interface {
	// Save stores a file at the given relative path, creating parent
	// directories as needed.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get opens the file at the given relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for a stored path.
	URL(path string) string
}
