package dto

import (
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
)

// IngestTransactionRequest is a single candidate posted by a client.
// Direction may be omitted when the amount is signed.
type IngestTransactionRequest struct {
	Date           string  `json:"date" binding:"required"`
	Amount         string  `json:"amount" binding:"required"`
	Direction      string  `json:"direction"`
	Description    string  `json:"description" binding:"required"`
	Reference      string  `json:"reference"`
	Merchant       string  `json:"merchant"`
	SourceType     string  `json:"sourceType" binding:"omitempty,oneof=csv ai_extraction manual"`
	UploadedFileID *string `json:"uploadedFileId"`
}

// ExtractedCandidate returns the request in the extraction text form
func (r IngestTransactionRequest) ExtractedCandidate() usecase.ExtractedCandidate {
	return usecase.ExtractedCandidate{
		Date:        r.Date,
		Amount:      r.Amount,
		Direction:   r.Direction,
		Description: r.Description,
		Reference:   r.Reference,
		Merchant:    r.Merchant,
	}
}

// CategorizationResponse is the categorization of one normalized transaction
type CategorizationResponse struct {
	ID                      string    `json:"id"`
	NormalizedTransactionID string    `json:"normalizedTransactionId"`
	CategoryID              *string   `json:"categoryId"`
	Method                  string    `json:"method"`
	Confidence              float64   `json:"confidence"`
	Explanation             string    `json:"explanation"`
	Status                  string    `json:"status"`
	RuleID                  *string   `json:"ruleId,omitempty"`
	DecidedAt               time.Time `json:"decidedAt"`
}

// IngestTransactionResponse identifies the records written for a candidate
type IngestTransactionResponse struct {
	RawID          string                  `json:"rawId"`
	NormalizedID   string                  `json:"normalizedId"`
	Categorization *CategorizationResponse `json:"categorization"`
}

// OverrideRequest names the corrected category by id or by code
type OverrideRequest struct {
	CategoryID   string `json:"categoryId"`
	CategoryCode string `json:"categoryCode"`
	Reason       string `json:"reason"`
}

// OverrideResponse is the corrected categorization and the learned rule
type OverrideResponse struct {
	Categorization *CategorizationResponse `json:"categorization"`
	OverrideRuleID string                  `json:"overrideRuleId"`
}

// FromCategorization maps a domain categorization; nil stays nil
func FromCategorization(c *entity.TransactionCategorization) *CategorizationResponse {
	if c == nil {
		return nil
	}
	return &CategorizationResponse{
		ID:                      c.ID,
		NormalizedTransactionID: c.NormalizedTransactionID,
		CategoryID:              c.CategoryID,
		Method:                  string(c.Method),
		Confidence:              c.Confidence,
		Explanation:             c.Explanation,
		Status:                  string(c.Status),
		RuleID:                  c.RuleID,
		DecidedAt:               c.DecidedAt,
	}
}

// FromIngestResult maps the records written by a single ingest
func FromIngestResult(r *usecase.IngestResult) IngestTransactionResponse {
	return IngestTransactionResponse{
		RawID:          r.RawTransaction.ID,
		NormalizedID:   r.Normalized.ID,
		Categorization: FromCategorization(r.Categorization),
	}
}
