package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// ReviewFilter narrows the review queue listing
type ReviewFilter struct {
	EntityID       string
	Status         entity.CategorizationStatus
	UploadedFileID *string
	Limit          int
	Offset         int
}

// CategorizationRepository stores the single mutable decision per normalized transaction
type CategorizationRepository interface {
	// Upsert inserts or replaces the categorization of its normalized transaction.
	// On return c.ID holds the stored row id.
	Upsert(ctx context.Context, c *entity.TransactionCategorization) error

	// GetByNormalizedID retrieves the categorization of a normalized transaction
	//
	// Possible errors:
	// - ErrNotFound: If the transaction has not been categorized
	// - ErrDatabaseConnection: If database connection fails
	GetByNormalizedID(ctx context.Context, entityID, normalizedTransactionID string) (*entity.TransactionCategorization, error)

	// CountNeedsReviewByUpload counts an upload's rows still awaiting review. A row
	// without a categorization counts as awaiting review.
	CountNeedsReviewByUpload(ctx context.Context, uploadedFileID string) (int64, error)

	// ListReview returns categorizations joined with their transaction context, newest first
	ListReview(ctx context.Context, filter ReviewFilter) ([]entity.ReviewItem, error)
}
