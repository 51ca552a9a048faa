package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// CreateUploadRequest registers a batch. ContentHash is computed from Content when empty.
type CreateUploadRequest struct {
	EntityID       string
	ContentHash    string
	FileName       string
	SourceType     entity.SourceType
	StorageLocator string
	Content        []byte
}

// CreateUploadResult identifies the upload a request resolved to
type CreateUploadResult struct {
	UploadedFileID string
	WasExisting    bool
	RawCount       int
	SkippedCount   int
}

// StageFunc persists a batch's rows inside the transaction that creates the upload
type StageFunc func(txCtx context.Context, upload *entity.UploadedFile) (rawCount, skippedCount int, err error)

// Commit outcomes
const (
	CommitStatusCommitted = "committed"
	CommitStatusBlocked   = "blocked"
)

// CommitResult is either committed with a time, or blocked with a count
type CommitResult struct {
	UploadedFileID   string
	Status           string
	CommittedAt      *time.Time
	NeedsReviewCount int64
}

// LedgerUseCase wraps batches for dedup and gates their commit
type LedgerUseCase interface {
	// CreateUpload returns the existing upload for the same content instead of failing
	CreateUpload(ctx context.Context, req CreateUploadRequest) (*CreateUploadResult, error)

	// StageUpload creates the upload and persists its rows atomically; stage is not
	// called when the upload already exists
	StageUpload(ctx context.Context, req CreateUploadRequest, stage StageFunc) (*CreateUploadResult, error)

	// CommitUpload finalizes an upload once nothing in it needs review
	CommitUpload(ctx context.Context, entityID, uploadID string) (*CommitResult, error)

	// GetUpload retrieves an upload
	GetUpload(ctx context.Context, entityID, uploadID string) (*entity.UploadedFile, error)
}
