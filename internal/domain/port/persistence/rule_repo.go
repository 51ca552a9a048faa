package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// RuleRepository stores entity-scoped system rules
type RuleRepository interface {
	// Create saves a new rule
	Create(ctx context.Context, rule *entity.CategorizationRule) error

	// CreateIfAbsent saves a seeded rule unless one with the same entity and seed key exists.
	// Returns true when the rule was inserted.
	CreateIfAbsent(ctx context.Context, rule *entity.CategorizationRule) (bool, error)

	// GetByID retrieves a rule within an entity
	//
	// Possible errors:
	// - ErrRuleNotFound: If the rule doesn't exist in the entity
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, entityID, id string) (*entity.CategorizationRule, error)

	// ListEnabled returns enabled rules ordered by priority, creation time and id
	ListEnabled(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error)

	// List returns every rule of the entity in evaluation order
	List(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error)

	// SetEnabled toggles a rule
	//
	// Possible errors:
	// - ErrRuleNotFound: If the rule doesn't exist in the entity
	SetEnabled(ctx context.Context, entityID, id string, enabled bool) error
}

// OverrideRuleRepository stores rules learned from manual corrections
type OverrideRuleRepository interface {
	// Create saves a new override rule
	Create(ctx context.Context, rule *entity.UserOverrideRule) error

	// ListEnabled returns enabled override rules, most recent first
	ListEnabled(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error)

	// List returns every override rule of the entity, most recent first
	List(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error)
}
