package usecase

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// OverrideRequest is a manual correction. Either CategoryID or CategoryCode is set.
type OverrideRequest struct {
	EntityID                string
	NormalizedTransactionID string
	CategoryID              string
	CategoryCode            string
	Reason                  string
	Actor                   string
}

// OverrideResult is the corrected categorization and the rule learned from it
type OverrideResult struct {
	Categorization *entity.TransactionCategorization
	OverrideRuleID string
}

// OverrideUseCase applies manual corrections
type OverrideUseCase interface {
	// ApplyOverride records the correction, learns a rule and audits it atomically
	ApplyOverride(ctx context.Context, req OverrideRequest) (*OverrideResult, error)
}
