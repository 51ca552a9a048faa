package usecase

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// ReviewQuery selects review queue items; Status defaults to needs_review
type ReviewQuery struct {
	EntityID       string
	Status         entity.CategorizationStatus
	UploadedFileID *string
	Limit          int
	Offset         int
}

// ReviewUseCase serves read models for reviewers
type ReviewUseCase interface {
	// ListReviewQueue returns categorizations with their transaction context
	ListReviewQueue(ctx context.Context, q ReviewQuery) ([]entity.ReviewItem, error)

	// ListCategories returns the category catalog
	ListCategories(ctx context.Context) ([]entity.Category, error)
}
