package backend_test

import (
	"context"
	"io"
	"testing"
	"time"

	"minio-storage/core/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopStorage struct{}

func (nopStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) { return nil, nil }

func (nopStorage) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error) {
	return name, nil
}

func (nopStorage) Delete(ctx context.Context, name string) error { return nil }

func (nopStorage) Exists(ctx context.Context, name string) (bool, error) { return false, nil }

func (nopStorage) URL(name string) string { return "" }
func (nopStorage) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	return "", nil
}

func (nopStorage) Size(ctx context.Context, name string) (int64, error) { return 0, nil }

func (nopStorage) List(ctx context.Context, prefix string) ([]backend.ObjectInfo, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	backend.Register("nop", func(opts backend.Options) (backend.Storage, error) {
		return nopStorage{}, nil
	})

	t.Run("Open", func(t *testing.T) {
		store, err := backend.Open("nop", nil)
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("Unknown", func(t *testing.T) {
		store, err := backend.Open("does-not-exist", nil)
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("DuplicatePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			backend.Register("nop", func(opts backend.Options) (backend.Storage, error) {
				return nopStorage{}, nil
			})
		})
	})

	t.Run("Registered", func(t *testing.T) {
		assert.Contains(t, backend.Registered(), "nop")
	})
}
