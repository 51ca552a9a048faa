package dto

import (
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
)

// CreateUploadRequest registers a batch whose rows are posted separately
type CreateUploadRequest struct {
	ContentHash    string `json:"contentHash" binding:"required"`
	FileName       string `json:"fileName"`
	SourceType     string `json:"sourceType" binding:"required,oneof=csv ai_extraction manual"`
	StorageLocator string `json:"storageLocator"`
}

// CreateUploadResponse tells the caller whether the batch was already known
type CreateUploadResponse struct {
	UploadedFileID string `json:"uploadedFileId"`
	WasExisting    bool   `json:"wasExisting"`
	RawCount       int    `json:"rawCount"`
	SkippedCount   int    `json:"skippedCount"`
}

// ExtractedBatchRequest is the output of document extraction
type ExtractedBatchRequest struct {
	FileName             string                       `json:"fileName"`
	ContentHash          string                       `json:"contentHash"`
	DocumentType         string                       `json:"documentType"`
	ExtractionConfidence float64                      `json:"extractionConfidence" binding:"gte=0,lte=1"`
	Candidates           []usecase.ExtractedCandidate `json:"candidates" binding:"required,min=1"`
}

// BatchResponse summarizes an ingested upload
type BatchResponse struct {
	UploadedFileID   string `json:"uploadedFileId"`
	WasExisting      bool   `json:"wasExisting"`
	RawCount         int    `json:"rawCount"`
	SkippedCount     int    `json:"skippedCount"`
	ConfirmedCount   int    `json:"confirmedCount"`
	NeedsReviewCount int    `json:"needsReviewCount"`
	FailedCount      int    `json:"failedCount"`
}

// UploadResponse is the stored state of an upload
type UploadResponse struct {
	ID             string     `json:"id"`
	EntityID       string     `json:"entityId"`
	ContentHash    string     `json:"contentHash"`
	StorageLocator string     `json:"storageLocator,omitempty"`
	FileName       string     `json:"fileName"`
	SourceType     string     `json:"sourceType"`
	Status         string     `json:"status"`
	RawCount       int        `json:"rawCount"`
	SkippedCount   int        `json:"skippedCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	CommittedAt    *time.Time `json:"committedAt,omitempty"`
}

// CommitResponse is returned with 200 when committed and 409 when blocked
type CommitResponse struct {
	UploadedFileID   string     `json:"uploadedFileId"`
	Status           string     `json:"status"`
	CommittedAt      *time.Time `json:"committedAt,omitempty"`
	NeedsReviewCount int64      `json:"needsReviewCount,omitempty"`
}

// FromCreateUploadResult maps a create-or-get outcome
func FromCreateUploadResult(r *usecase.CreateUploadResult) CreateUploadResponse {
	return CreateUploadResponse{
		UploadedFileID: r.UploadedFileID,
		WasExisting:    r.WasExisting,
		RawCount:       r.RawCount,
		SkippedCount:   r.SkippedCount,
	}
}

// FromBatchResult maps a batch summary
func FromBatchResult(r *usecase.BatchResult) BatchResponse {
	return BatchResponse{
		UploadedFileID:   r.UploadedFileID,
		WasExisting:      r.WasExisting,
		RawCount:         r.RawCount,
		SkippedCount:     r.SkippedCount,
		ConfirmedCount:   r.ConfirmedCount,
		NeedsReviewCount: r.NeedsReviewCount,
		FailedCount:      r.FailedCount,
	}
}

// FromUpload maps an upload
func FromUpload(u *entity.UploadedFile) UploadResponse {
	return UploadResponse{
		ID:             u.ID,
		EntityID:       u.EntityID,
		ContentHash:    u.ContentHash,
		StorageLocator: u.StorageLocator,
		FileName:       u.FileName,
		SourceType:     string(u.SourceType),
		Status:         string(u.Status),
		RawCount:       u.RawCount,
		SkippedCount:   u.SkippedCount,
		CreatedAt:      u.CreatedAt,
		CommittedAt:    u.CommittedAt,
	}
}

// FromCommitResult maps a commit outcome
func FromCommitResult(r *usecase.CommitResult) CommitResponse {
	return CommitResponse{
		UploadedFileID:   r.UploadedFileID,
		Status:           r.Status,
		CommittedAt:      r.CommittedAt,
		NeedsReviewCount: r.NeedsReviewCount,
	}
}
