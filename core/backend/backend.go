package backend

import (
	"context"
	"io"
	"time"
)

// Storage is the contract every storage backend must satisfy. Callers only
// ever see this interface; the concrete backend is picked by name through
// the registry.
type Storage interface {
	// Open returns a reader over the content of the named object.
	// The caller must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Save stores content under the given name and returns the stored name.
	// A negative size means the length is unknown and the backend may buffer
	// the content to determine it. An empty contentType defaults to
	// application/octet-stream.
	Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error)

	// Delete removes the named object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether the named object is present.
	Exists(ctx context.Context, name string) (bool, error)

	// URL returns the public URL of the named object.
	URL(name string) string

	// SignedURL returns a time-limited URL granting read access to the named object.
	SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error)

	// Size returns the size in bytes of the named object.
	Size(ctx context.Context, name string) (int64, error)

	// List returns the names of objects under the given prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	ETag         string    `json:"etag,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Options is the backend-specific configuration map, as it appears under a
// backend registration key (e.g. bucket_name, endpoint, access_key,
// secret_key, secure for the minio backend).
type Options map[string]any
