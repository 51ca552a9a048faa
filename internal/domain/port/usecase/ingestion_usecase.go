package usecase

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// IngestRequest is a single candidate entering the pipeline
type IngestRequest struct {
	EntityID       string
	SourceType     entity.SourceType
	Candidate      entity.Candidate
	UploadedFileID *string
	Provenance     map[string]any
}

// IngestResult holds the records written for one candidate
type IngestResult struct {
	RawTransaction *entity.RawTransaction
	Normalized     *entity.NormalizedTransaction
	Categorization *entity.TransactionCategorization
}

// CSVBatchRequest is a CSV export to ingest as one upload
type CSVBatchRequest struct {
	EntityID string
	FileName string
	Content  []byte
}

// ExtractedCandidate is one row produced by document extraction.
// Fields arrive as text and may be incomplete.
type ExtractedCandidate struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Direction   string `json:"direction"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Merchant    string `json:"merchant"`
}

// ExtractedBatchRequest is the structured output of document extraction
type ExtractedBatchRequest struct {
	EntityID             string
	FileName             string
	ContentHash          string
	DocumentType         string
	ExtractionConfidence float64
	Candidates           []ExtractedCandidate
}

// BatchResult summarizes an ingested upload
type BatchResult struct {
	UploadedFileID   string
	WasExisting      bool
	RawCount         int
	SkippedCount     int
	ConfirmedCount   int
	NeedsReviewCount int
	FailedCount      int
}

// IngestionUseCase defines the ingestion entry points
type IngestionUseCase interface {
	// Ingest stores, normalizes and classifies one candidate
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)

	// IngestCSV parses a CSV export and ingests it as one deduplicated upload
	IngestCSV(ctx context.Context, req CSVBatchRequest) (*BatchResult, error)

	// IngestExtracted ingests extracted candidates as one deduplicated upload,
	// skipping candidates that lack required fields
	IngestExtracted(ctx context.Context, req ExtractedBatchRequest) (*BatchResult, error)
}
