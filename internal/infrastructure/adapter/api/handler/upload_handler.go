package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DefaultMaxUploadBytes caps CSV bodies when no limit is configured
const DefaultMaxUploadBytes int64 = 10 << 20

// UploadHandler handles batch registration, ingestion and commit
type UploadHandler struct {
	ledger         usecase.LedgerUseCase
	ingestion      usecase.IngestionUseCase
	maxUploadBytes int64
	logger         coreport.Logger
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(
	ledger usecase.LedgerUseCase,
	ingestion usecase.IngestionUseCase,
	maxUploadBytes int64,
	logger coreport.Logger,
) *UploadHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &UploadHandler{
		ledger:         ledger,
		ingestion:      ingestion,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// CreateUpload handles POST /entities/:entityId/uploads
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	var req dto.CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.ledger.CreateUpload(c.Request.Context(), usecase.CreateUploadRequest{
		EntityID:       c.Param("entityId"),
		ContentHash:    req.ContentHash,
		FileName:       req.FileName,
		SourceType:     entity.SourceType(req.SourceType),
		StorageLocator: req.StorageLocator,
	})
	if err != nil {
		respondError(c, h.logger, "create_upload", err)
		return
	}

	status := http.StatusCreated
	if result.WasExisting {
		status = http.StatusOK
	}
	c.JSON(status, dto.FromCreateUploadResult(result))
}

// UploadCSV handles POST /entities/:entityId/uploads/csv. The document is
// read from the multipart field "file", or from the raw body otherwise.
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileName, content, err := h.readDocument(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidDocument),
				Message: fmt.Sprintf("Document exceeds %d bytes", h.maxUploadBytes),
			})
			return
		}
		badRequest(c, err.Error())
		return
	}

	result, err := h.ingestion.IngestCSV(c.Request.Context(), usecase.CSVBatchRequest{
		EntityID: c.Param("entityId"),
		FileName: fileName,
		Content:  content,
	})
	if err != nil {
		respondError(c, h.logger, "ingest_csv", err)
		return
	}

	c.JSON(batchStatus(result), dto.FromBatchResult(result))
}

func (h *UploadHandler) readDocument(c *gin.Context) (string, []byte, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		header, err := c.FormFile("file")
		if err != nil {
			return "", nil, fmt.Errorf("missing multipart field \"file\": %w", err)
		}
		f, err := header.Open()
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return "", nil, err
		}
		content, err = nonEmpty(content)
		return header.Filename, content, err
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", nil, err
	}
	fileName := c.Query("fileName")
	if fileName == "" {
		fileName = "upload.csv"
	}
	content, err = nonEmpty(content)
	return fileName, content, err
}

func nonEmpty(content []byte) ([]byte, error) {
	if len(content) == 0 {
		return nil, errors.New("document is empty")
	}
	return content, nil
}

// UploadExtracted handles POST /entities/:entityId/uploads/extracted
func (h *UploadHandler) UploadExtracted(c *gin.Context) {
	var req dto.ExtractedBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.ingestion.IngestExtracted(c.Request.Context(), usecase.ExtractedBatchRequest{
		EntityID:             c.Param("entityId"),
		FileName:             req.FileName,
		ContentHash:          req.ContentHash,
		DocumentType:         req.DocumentType,
		ExtractionConfidence: req.ExtractionConfidence,
		Candidates:           req.Candidates,
	})
	if err != nil {
		respondError(c, h.logger, "ingest_extracted", err)
		return
	}

	c.JSON(batchStatus(result), dto.FromBatchResult(result))
}

// GetUpload handles GET /entities/:entityId/uploads/:uploadId
func (h *UploadHandler) GetUpload(c *gin.Context) {
	upload, err := h.ledger.GetUpload(c.Request.Context(), c.Param("entityId"), c.Param("uploadId"))
	if err != nil {
		respondError(c, h.logger, "get_upload", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUpload(upload))
}

// CommitUpload handles POST /entities/:entityId/uploads/:uploadId/commit.
// A blocked commit is answered with 409 and the number of items awaiting review.
func (h *UploadHandler) CommitUpload(c *gin.Context) {
	result, err := h.ledger.CommitUpload(c.Request.Context(), c.Param("entityId"), c.Param("uploadId"))
	if err != nil {
		respondError(c, h.logger, "commit_upload", err)
		return
	}

	status := http.StatusOK
	if result.Status == usecase.CommitStatusBlocked {
		status = http.StatusConflict
	}
	c.JSON(status, dto.FromCommitResult(result))
}

func batchStatus(result *usecase.BatchResult) int {
	if result.WasExisting {
		return http.StatusOK
	}
	return http.StatusCreated
}
