package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review queue and the category catalog
type ReviewHandler struct {
	review usecase.ReviewUseCase
	logger coreport.Logger
}

// NewReviewHandler creates a new review handler instance
func NewReviewHandler(review usecase.ReviewUseCase, logger coreport.Logger) *ReviewHandler {
	return &ReviewHandler{review: review, logger: logger}
}

// ListCategories handles GET /categories
func (h *ReviewHandler) ListCategories(c *gin.Context) {
	categories, err := h.review.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCategories(categories))
}

// ListReviewQueue handles GET /entities/:entityId/review-queue
func (h *ReviewHandler) ListReviewQueue(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		badRequest(c, "limit must be an integer")
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		badRequest(c, "offset must be an integer")
		return
	}

	q := usecase.ReviewQuery{
		EntityID: c.Param("entityId"),
		Status:   entity.CategorizationStatus(c.Query("status")),
		Limit:    limit,
		Offset:   offset,
	}
	if uploadID := c.Query("uploadedFileId"); uploadID != "" {
		q.UploadedFileID = &uploadID
	}

	items, err := h.review.ListReviewQueue(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, "list_review_queue", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReviewQueueResponse{
		Items:  dto.FromReviewItems(items),
		Limit:  limit,
		Offset: offset,
	})
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
