package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	tport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
)

// Candidate is one transaction tuple produced by an ingestion adapter
type Candidate struct {
	Date          time.Time
	AmountInCents int64
	Direction     Direction
	Description   string
	Reference     string
	Merchant      string
	// Line is the source line for CSV candidates, 0 otherwise
	Line int
}

// Validate checks that the candidate carries every required field
func (c Candidate) Validate() error {
	switch {
	case c.Date.IsZero():
		return fmt.Errorf("%w: date", errs.ErrMissingField)
	case c.AmountInCents < 0:
		return fmt.Errorf("%w: amount must be a non-negative magnitude", errs.ErrInvalidAmount)
	case !c.Direction.IsValid():
		return fmt.Errorf("%w: %q", errs.ErrInvalidDirection, c.Direction)
	case strings.TrimSpace(c.Description) == "":
		return fmt.Errorf("%w: description", errs.ErrMissingField)
	}
	return nil
}

// RawTransaction is the immutable record of one ingested item
type RawTransaction struct {
	ID              string
	EntityID        string
	SourceType      SourceType
	TransactionDate time.Time
	AmountInCents   int64
	Direction       Direction
	DescriptionRaw  string
	ReferenceRaw    string
	Provenance      map[string]any
	UploadedFileID  *string
	CreatedAt       time.Time
}

// NewRawTransaction builds a raw record from a validated candidate
func NewRawTransaction(
	id string,
	entityID string,
	sourceType SourceType,
	candidate Candidate,
	provenance map[string]any,
	uploadedFileID *string,
	timeProvider tport.TimeProvider,
) (*RawTransaction, error) {
	if err := ValidateEntityID(entityID); err != nil {
		return nil, err
	}
	if !sourceType.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSourceType, sourceType)
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	if provenance == nil {
		provenance = map[string]any{}
	}
	if candidate.Merchant != "" {
		provenance["merchant"] = candidate.Merchant
	}
	if candidate.Line > 0 {
		provenance["line"] = candidate.Line
	}

	return &RawTransaction{
		ID:              id,
		EntityID:        entityID,
		SourceType:      sourceType,
		TransactionDate: candidate.Date,
		AmountInCents:   candidate.AmountInCents,
		Direction:       candidate.Direction,
		DescriptionRaw:  candidate.Description,
		ReferenceRaw:    candidate.Reference,
		Provenance:      provenance,
		UploadedFileID:  uploadedFileID,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// NormalizationDiff records what the normalizer changed, for audit
type NormalizationDiff struct {
	OriginalDescription string `json:"originalDescription"`
	CleanedDescription  string `json:"cleanedDescription"`
	ReferenceExtracted  string `json:"referenceExtracted,omitempty"`
	ReferenceSource     string `json:"referenceSource"`
}

// NormalizedTransaction is derived 1:1 from a RawTransaction by the normalizer.
// Direction, amount and date are copied from the raw record so matching and
// history lookups work on a single row.
type NormalizedTransaction struct {
	ID                   string
	EntityID             string
	RawTransactionID     string
	DescriptionClean     string
	ReferenceExtracted   string
	NormalizationVersion string
	Diff                 NormalizationDiff
	Direction            Direction
	AmountInCents        int64
	TransactionDate      time.Time
	CreatedAt            time.Time
}
