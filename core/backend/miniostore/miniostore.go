package miniostore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"minio-storage/core/backend"
	"minio-storage/core/storage"
	"minio-storage/core/utils"

	"github.com/minio/minio-go/v7"
)

// Name is the fixed name this backend is registered under.
const Name = "minio"

// DefaultContentType is used when the caller does not provide one.
const DefaultContentType = "application/octet-stream"

func init() {
	backend.Register(Name, func(opts backend.Options) (backend.Storage, error) {
		return New(ConfigFromOptions(opts))
	})
}

// ConfigFromOptions builds a storage.Config from the untyped options map
// found under the backend registration key.
func ConfigFromOptions(opts backend.Options) storage.Config {
	return storage.Config{
		BucketName:     utils.ToString(opts["bucket_name"]),
		Endpoint:       utils.ToString(opts["endpoint"]),
		AccessKey:      utils.ToString(opts["access_key"]),
		SecretKey:      utils.ToString(opts["secret_key"]),
		Secure:         utils.ToBool(opts["secure"]),
		Region:         utils.ToString(opts["region"]),
		TimeoutSeconds: utils.ToInt(opts["timeout_seconds"]),
	}
}

// OptionsFromConfig is the inverse of ConfigFromOptions, for callers that
// hold a typed config but dispatch through the registry.
func OptionsFromConfig(cfg storage.Config) backend.Options {
	return backend.Options{
		"bucket_name":     cfg.BucketName,
		"endpoint":        cfg.Endpoint,
		"access_key":      cfg.AccessKey,
		"secret_key":      cfg.SecretKey,
		"secure":          cfg.Secure,
		"region":          cfg.Region,
		"timeout_seconds": cfg.TimeoutSeconds,
	}
}

// Store is the MinIO-backed implementation of backend.Storage. It is
// stateless aside from the client handle and its configuration.
type Store struct {
	client  storage.Client
	bucket  string
	baseURL string
}

var _ backend.Storage = (*Store)(nil)

// New validates the configuration and constructs a Store connected to the
// configured endpoint. Construction fails with backend.ErrInvalidConfig when
// endpoint, access key, secret key or bucket name are missing.
func New(cfg storage.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrInvalidConfig, err)
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wires a Store over an existing client. Used by New and by
// tests that inject a mock client. The configuration is assumed valid.
func NewWithClient(client storage.Client, cfg storage.Config) *Store {
	return &Store{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: cfg.BaseURL(),
	}
}

// Open returns a reader over the content of the named object.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	// Stat first so a missing object fails here instead of on first read.
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		return nil, translateErr(err, name)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateErr(err, name)
	}
	return obj, nil
}

// Save stores content under the given name. Content of unknown size
// (size < 0) is buffered to determine its length before the upload.
func (s *Store) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = DefaultContentType
	}

	if size < 0 {
		var buf bytes.Buffer
		n, err := io.Copy(&buf, content)
		if err != nil {
			return "", fmt.Errorf("buffer content for %q: %w", name, err)
		}
		content = &buf
		size = n
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", name, err)
	}
	return name, nil
}

// Delete removes the named object. Removing a missing object is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("remove object %q: %w", name, err)
	}
	return nil
}

// Exists reports whether the named object is present. Object-level storage
// errors (missing key, denied access) report false; transport errors
// propagate.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if resp := minio.ToErrorResponse(err); resp.Code != "" {
		return false, nil
	}
	return false, err
}

// URL returns the public URL of the named object:
// scheme://endpoint/bucket/name with the scheme picked by the secure flag.
func (s *Store) URL(name string) string {
	return s.baseURL + "/" + s.bucket + "/" + name
}

// SignedURL returns a presigned GET URL valid for the given expiry.
// A non-positive expiry defaults to 15 minutes.
func (s *Store) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, name, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", name, err)
	}
	return u.String(), nil
}

// Size returns the size in bytes of the named object.
func (s *Store) Size(ctx context.Context, name string) (int64, error) {
	info, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return 0, translateErr(err, name)
	}
	return info.Size, nil
}

// List returns the objects stored under the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]backend.ObjectInfo, error) {
	objects := []backend.ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, obj.Err)
		}
		objects = append(objects, backend.ObjectInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			ETag:         obj.ETag,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}

// translateErr maps a missing object to backend.ErrNotFound and leaves every
// other client error untouched apart from context.
func translateErr(err error, name string) error {
	if isNotFound(err) {
		return fmt.Errorf("%q: %w", name, backend.ErrNotFound)
	}
	return fmt.Errorf("stat object %q: %w", name, err)
}
