// Package review serves the review queue and category catalog to reviewers.
package review

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
)

// Page size bounds
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service implements usecase.ReviewUseCase
type Service struct {
	uow    persistence.UnitOfWork
	logger core.Logger
}

// NewService creates a review service
func NewService(uow persistence.UnitOfWork, logger core.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// ListReviewQueue lists categorizations in the requested status, needs_review by default
func (s *Service) ListReviewQueue(ctx context.Context, q usecase.ReviewQuery) ([]entity.ReviewItem, error) {
	if err := entity.ValidateEntityID(q.EntityID); err != nil {
		return nil, err
	}

	status := q.Status
	if status == "" {
		status = entity.StatusNeedsReview
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidStatus, status)
	}
	if q.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", errs.ErrInvalidRequest)
	}

	limit := q.Limit
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	items, err := s.uow.GetCategorizationRepository(ctx).ListReview(ctx, persistence.ReviewFilter{
		EntityID:       q.EntityID,
		Status:         status,
		UploadedFileID: q.UploadedFileID,
		Limit:          limit,
		Offset:         q.Offset,
	})
	if err != nil {
		s.logger.Error("Failed to list review queue", map[string]any{
			"entity_id": q.EntityID,
			"error":     err.Error(),
		})
		return nil, err
	}
	if items == nil {
		items = []entity.ReviewItem{}
	}
	return items, nil
}

// ListCategories returns the catalog ordered by code
func (s *Service) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.uow.GetCategoryRepository(ctx).List(ctx)
}
