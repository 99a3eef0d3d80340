package mocks

import (
	"context"
	"io"
	"time"

	"minio-storage/core/backend"

	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of backend.Storage
type Storage struct {
	mock.Mock
}

func (m *Storage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Storage) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, name, content, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *Storage) URL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *Storage) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, name, expiry)
	return args.String(0), args.Error(1)
}

func (m *Storage) Size(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) List(ctx context.Context, prefix string) ([]backend.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if infos, ok := args.Get(0).([]backend.ObjectInfo); ok {
		return infos, args.Error(1)
	}
	return nil, args.Error(1)
}
