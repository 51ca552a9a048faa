package model

import (
	"time"
)

// UploadedFile is one ingestion batch; (entity_id, content_hash) is unique
type UploadedFile struct {
	ID             string     `gorm:"type:uuid;primaryKey"`
	EntityID       string     `gorm:"size:64;not null;uniqueIndex:idx_uploaded_files_entity_hash,priority:1"`
	ContentHash    string     `gorm:"size:64;not null;uniqueIndex:idx_uploaded_files_entity_hash,priority:2"`
	StorageLocator string     `gorm:"type:text"`
	FileName       string     `gorm:"size:255"`
	SourceType     string     `gorm:"size:32;not null"`
	Status         string     `gorm:"size:16;not null"`
	RawCount       int        `gorm:"not null;default:0"`
	SkippedCount   int        `gorm:"not null;default:0"`
	CreatedAt      time.Time  `gorm:"not null"`
	CommittedAt    *time.Time
}

// TableName specifies the table name for UploadedFile
func (UploadedFile) TableName() string {
	return "uploaded_files"
}
