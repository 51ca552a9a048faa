package entity

import "time"

// Method records which pipeline stage produced a categorization
type Method string

// Methods
const (
	MethodManual        Method = "manual"
	MethodRule          Method = "rule"
	MethodHistory       Method = "history"
	MethodAI            Method = "ai"
	MethodUncategorized Method = "uncategorized"
)

// CategorizationStatus is either settled or awaiting a human
type CategorizationStatus string

// Statuses
const (
	StatusConfirmed   CategorizationStatus = "confirmed"
	StatusNeedsReview CategorizationStatus = "needs_review"
)

// IsValid reports whether s is a known status
func (s CategorizationStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusNeedsReview
}

// Fixed confidences for the deterministic stages
const (
	ConfidenceManual  = 1.0
	ConfidenceRule    = 0.85
	ConfidenceHistory = 0.7
)

// AI confidence gates
const (
	AIMinConfidence     = 0.5
	AIConfirmConfidence = 0.8
)

// OverrideExplanation is the explanation written for manual corrections
const OverrideExplanation = "User override"

// Decision is the outcome of the classification pipeline for one transaction
type Decision struct {
	CategoryID  *string
	Method      Method
	Confidence  float64
	Explanation string
	Status      CategorizationStatus
	RuleID      *string
}

// TransactionCategorization is the one mutable record: overrides upsert it
type TransactionCategorization struct {
	ID                      string
	EntityID                string
	NormalizedTransactionID string
	CategoryID              *string
	Method                  Method
	Confidence              float64
	Explanation             string
	Status                  CategorizationStatus
	RuleID                  *string
	DecidedAt               time.Time
}

// NewCategorization stamps a pipeline decision onto a normalized transaction
func NewCategorization(id string, tx *NormalizedTransaction, d Decision, decidedAt time.Time) *TransactionCategorization {
	return &TransactionCategorization{
		ID:                      id,
		EntityID:                tx.EntityID,
		NormalizedTransactionID: tx.ID,
		CategoryID:              d.CategoryID,
		Method:                  d.Method,
		Confidence:              d.Confidence,
		Explanation:             d.Explanation,
		Status:                  d.Status,
		RuleID:                  d.RuleID,
		DecidedAt:               decidedAt,
	}
}

// CategorizationSnapshot is the audit view of a categorization
type CategorizationSnapshot struct {
	CategoryID  *string              `json:"categoryId"`
	Method      Method               `json:"method"`
	Confidence  float64              `json:"confidence"`
	Explanation string               `json:"explanation"`
	Status      CategorizationStatus `json:"status"`
	DecidedAt   time.Time            `json:"decidedAt"`
}

// Snapshot captures the current state for an audit record; nil-safe
func (c *TransactionCategorization) Snapshot() *CategorizationSnapshot {
	if c == nil {
		return nil
	}
	return &CategorizationSnapshot{
		CategoryID:  c.CategoryID,
		Method:      c.Method,
		Confidence:  c.Confidence,
		Explanation: c.Explanation,
		Status:      c.Status,
		DecidedAt:   c.DecidedAt,
	}
}

// ReviewItem is a categorization joined with its transaction context
type ReviewItem struct {
	Categorization     TransactionCategorization
	RawTransactionID   string
	UploadedFileID     *string
	DescriptionClean   string
	ReferenceExtracted string
	Direction          Direction
	AmountInCents      int64
	TransactionDate    time.Time
	CategoryCode       string
	CategoryName       string
}

// HistoryEntry is a prior transaction with the same cleaned description
type HistoryEntry struct {
	NormalizedTransactionID string
	CategoryID              *string
	TransactionDate         time.Time
	CreatedAt               time.Time
}
