package files

import (
	"context"
	"io"
	"time"

	"minio-storage/core/backend"
	"minio-storage/feature/files/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service implements the file operations on top of a storage backend, with
// an optional database-backed object index.
type Service struct {
	store  backend.Storage
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new files service. db may be nil; the index is then
// skipped and listings fall back to the bucket.
func NewService(store backend.Storage, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		store:  store,
		logger: logger,
		db:     db,
	}
}

// Upload stores content under the given name and returns the resulting
// object info. A negative size means the length is unknown.
func (s *Service) Upload(ctx context.Context, name string, content io.Reader, size int64, contentType string) (backend.ObjectInfo, error) {
	stored, err := s.store.Save(ctx, name, content, size, contentType)
	if err != nil {
		return backend.ObjectInfo{}, err
	}

	if size < 0 {
		// The backend buffered the content; ask it what was written.
		if n, err := s.store.Size(ctx, stored); err == nil {
			size = n
		} else {
			size = 0
		}
	}

	info := backend.ObjectInfo{
		Name:         stored,
		Size:         size,
		ContentType:  contentType,
		LastModified: time.Now().UTC(),
	}
	s.indexPut(ctx, info)
	return info, nil
}

// Download returns the object's metadata and a reader over its content.
func (s *Service) Download(ctx context.Context, name string) (io.ReadCloser, backend.ObjectInfo, error) {
	info, err := s.Stat(ctx, name)
	if err != nil {
		return nil, backend.ObjectInfo{}, err
	}
	rc, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, backend.ObjectInfo{}, err
	}
	return rc, info, nil
}

// Remove deletes the named object and its index entry.
func (s *Service) Remove(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	s.indexDelete(ctx, name)
	return nil
}

// Exists reports whether the named object is present in the bucket.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.store.Exists(ctx, name)
}

// Stat returns the object's size from the bucket, enriched with content type
// and upload time from the index when available.
func (s *Service) Stat(ctx context.Context, name string) (backend.ObjectInfo, error) {
	size, err := s.store.Size(ctx, name)
	if err != nil {
		return backend.ObjectInfo{}, err
	}

	info := backend.ObjectInfo{Name: name, Size: size}
	if s.db != nil {
		var rec models.ObjectRecord
		if err := s.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error; err == nil {
			info.ContentType = rec.ContentType
			info.ETag = rec.ETag
			info.LastModified = rec.UploadedAt
		}
	}
	return info, nil
}

// PublicURL returns the unauthenticated URL of the named object.
func (s *Service) PublicURL(name string) string {
	return s.store.URL(name)
}

// SignedURL returns a time-limited URL for the named object.
func (s *Service) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	return s.store.SignedURL(ctx, name, expiry)
}

// List returns the objects under the given prefix. The index is preferred
// when connected; otherwise the bucket is listed directly.
func (s *Service) List(ctx context.Context, prefix string) ([]backend.ObjectInfo, error) {
	if s.db == nil {
		return s.store.List(ctx, prefix)
	}

	var records []models.ObjectRecord
	query := s.db.WithContext(ctx).Order("name")
	if prefix != "" {
		query = query.Where("name LIKE ?", prefix+"%")
	}
	if err := query.Find(&records).Error; err != nil {
		s.logger.Warn("Object index query failed, listing bucket instead", zap.Error(err))
		return s.store.List(ctx, prefix)
	}

	infos := make([]backend.ObjectInfo, 0, len(records))
	for _, rec := range records {
		infos = append(infos, rec.Info())
	}
	return infos, nil
}

// indexPut upserts the index entry for a stored object. Index failures are
// logged, never surfaced; the bucket remains the source of truth.
func (s *Service) indexPut(ctx context.Context, info backend.ObjectInfo) {
	if s.db == nil {
		return
	}

	rec := models.ObjectRecord{
		Name:        info.Name,
		Size:        info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
		UploadedAt:  info.LastModified,
	}
	err := s.db.WithContext(ctx).
		Where("name = ?", info.Name).
		Assign(rec).
		FirstOrCreate(&models.ObjectRecord{}).Error
	if err != nil {
		s.logger.Warn("Failed to index object", zap.String("name", info.Name), zap.Error(err))
	}
}

func (s *Service) indexDelete(ctx context.Context, name string) {
	if s.db == nil {
		return
	}
	if err := s.db.WithContext(ctx).Where("name = ?", name).Delete(&models.ObjectRecord{}).Error; err != nil {
		s.logger.Warn("Failed to remove object from index", zap.String("name", name), zap.Error(err))
	}
}
