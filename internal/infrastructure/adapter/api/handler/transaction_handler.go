package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles single-transaction ingestion and manual corrections
type TransactionHandler struct {
	ingestion usecase.IngestionUseCase
	override  usecase.OverrideUseCase
	logger    coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	ingestion usecase.IngestionUseCase,
	override usecase.OverrideUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		ingestion: ingestion,
		override:  override,
		logger:    logger,
	}
}

// Ingest handles POST /entities/:entityId/transactions
func (h *TransactionHandler) Ingest(c *gin.Context) {
	var req dto.IngestTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	candidate, err := ingestion.CandidateFromExtracted(req.ExtractedCandidate())
	if err != nil {
		respondError(c, h.logger, "ingest", err)
		return
	}

	sourceType := entity.SourceManual
	if req.SourceType != "" {
		sourceType = entity.SourceType(req.SourceType)
	}

	result, err := h.ingestion.Ingest(c.Request.Context(), usecase.IngestRequest{
		EntityID:       c.Param("entityId"),
		SourceType:     sourceType,
		Candidate:      candidate,
		UploadedFileID: req.UploadedFileID,
		Provenance: map[string]any{
			"actor":     middleware.ActorFrom(c),
			"requestId": middleware.RequestIDFrom(c),
		},
	})
	if err != nil {
		respondError(c, h.logger, "ingest", err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromIngestResult(result))
}

// Override handles POST /entities/:entityId/transactions/:normalizedId/override
func (h *TransactionHandler) Override(c *gin.Context) {
	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	if req.CategoryID == "" && req.CategoryCode == "" {
		badRequest(c, "One of categoryId or categoryCode is required")
		return
	}

	result, err := h.override.ApplyOverride(c.Request.Context(), usecase.OverrideRequest{
		EntityID:                c.Param("entityId"),
		NormalizedTransactionID: c.Param("normalizedId"),
		CategoryID:              req.CategoryID,
		CategoryCode:            req.CategoryCode,
		Reason:                  req.Reason,
		Actor:                   middleware.ActorFrom(c),
	})
	if err != nil {
		respondError(c, h.logger, "apply_override", err)
		return
	}

	c.JSON(http.StatusOK, dto.OverrideResponse{
		Categorization: dto.FromCategorization(result.Categorization),
		OverrideRuleID: result.OverrideRuleID,
	})
}
