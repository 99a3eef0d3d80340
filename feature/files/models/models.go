package models

import (
	"time"

	"minio-storage/core/backend"
)

// ObjectRecord is a row of the optional object index, one per stored object.
type ObjectRecord struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;uniqueIndex;size:512"`
	Size        int64     `gorm:"column:size"`
	ContentType string    `gorm:"column:content_type;size:255"`
	ETag        string    `gorm:"column:etag;size:64"`
	UploadedAt  time.Time `gorm:"column:uploaded_at"`
}

// TableName sets the table name for GORM.
func (ObjectRecord) TableName() string {
	return "objects"
}

// Info converts the record into the wire representation shared with the
// bucket-backed listing.
func (r ObjectRecord) Info() backend.ObjectInfo {
	return backend.ObjectInfo{
		Name:         r.Name,
		Size:         r.Size,
		ContentType:  r.ContentType,
		ETag:         r.ETag,
		LastModified: r.UploadedAt,
	}
}
