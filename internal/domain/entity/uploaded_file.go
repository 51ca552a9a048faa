package entity

import "time"

// UploadStatus is the one-directional lifecycle of an ingestion batch
type UploadStatus string

// Upload statuses
const (
	UploadStaged    UploadStatus = "staged"
	UploadCommitted UploadStatus = "committed"
)

// UploadedFile is one ingestion batch
type UploadedFile struct {
	ID             string
	EntityID       string
	ContentHash    string
	StorageLocator string
	FileName       string
	SourceType     SourceType
	Status         UploadStatus
	RawCount       int
	SkippedCount   int
	CreatedAt      time.Time
	CommittedAt    *time.Time
}

// IsCommitted reports whether the upload has been finalized
func (u *UploadedFile) IsCommitted() bool {
	return u.Status == UploadCommitted
}

// MarkCommitted flips the upload to committed; it never moves back
func (u *UploadedFile) MarkCommitted(at time.Time) {
	u.Status = UploadCommitted
	u.CommittedAt = &at
}
