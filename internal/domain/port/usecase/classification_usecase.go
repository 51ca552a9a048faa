package usecase

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// ClassificationUseCase runs the categorization pipeline
type ClassificationUseCase interface {
	// RuleSet returns the entity's current rule snapshot
	RuleSet(ctx context.Context, entityID string) (*entity.RuleSet, error)

	// Decide runs the stages in order against a snapshot; it never fails
	Decide(ctx context.Context, rs *entity.RuleSet, tx *entity.NormalizedTransaction) entity.Decision

	// Classify decides and upserts the categorization of tx
	Classify(ctx context.Context, rs *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error)

	// Record upserts a decision made outside the pipeline as the categorization of tx
	Record(ctx context.Context, tx *entity.NormalizedTransaction, decision entity.Decision) (*entity.TransactionCategorization, error)

	// InvalidateRules drops the cached snapshot of an entity
	InvalidateRules(entityID string)
}
