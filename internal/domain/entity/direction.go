package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
)

// Direction is the sign proxy for a transaction's cash-flow effect
type Direction string

// Directions
const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

var directionSynonyms = map[string]Direction{
	"inflow":  DirectionInflow,
	"credit":  DirectionInflow,
	"cr":      DirectionInflow,
	"outflow": DirectionOutflow,
	"debit":   DirectionOutflow,
	"dr":      DirectionOutflow,
}

// ParseDirection resolves a direction token, case-insensitively, from its accepted synonyms
func ParseDirection(token string) (Direction, error) {
	if d, ok := directionSynonyms[strings.ToLower(strings.TrimSpace(token))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidDirection, token)
}

// IsValid reports whether d is one of the two canonical directions
func (d Direction) IsValid() bool {
	return d == DirectionInflow || d == DirectionOutflow
}

// SourceType identifies the ingestion adapter a record came from
type SourceType string

// Source types
const (
	SourceCSV          SourceType = "csv"
	SourceAIExtraction SourceType = "ai_extraction"
	SourceManual       SourceType = "manual"
)

// IsValid reports whether s is a known source type
func (s SourceType) IsValid() bool {
	switch s {
	case SourceCSV, SourceAIExtraction, SourceManual:
		return true
	}
	return false
}

// maxEntityIDLength keeps entity ids within the indexed column size
const maxEntityIDLength = 64

// ValidateEntityID checks the tenant identifier carried by every record
func ValidateEntityID(entityID string) error {
	trimmed := strings.TrimSpace(entityID)
	if trimmed == "" || trimmed != entityID || len(entityID) > maxEntityIDLength {
		return fmt.Errorf("%w: %q", errs.ErrInvalidEntityID, entityID)
	}
	return nil
}
