package usecase

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// CreateRuleRequest defines a system rule. Either CategoryID or CategoryCode is set.
type CreateRuleRequest struct {
	EntityID            string
	Priority            int
	Matcher             entity.MatcherSpec
	CategoryID          string
	CategoryCode        string
	ExplanationTemplate string
	Enabled             *bool
}

// RuleUseCase manages an entity's rules
type RuleUseCase interface {
	// CreateRule validates the matcher and stores the rule
	CreateRule(ctx context.Context, req CreateRuleRequest) (*entity.CategorizationRule, error)

	// ListRules returns system rules in evaluation order
	ListRules(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error)

	// SetRuleEnabled enables or disables a system rule
	SetRuleEnabled(ctx context.Context, entityID, ruleID string, enabled bool) (*entity.CategorizationRule, error)

	// ListOverrideRules returns learned override rules, most recent first
	ListOverrideRules(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error)

	// EnsureDefaultRules seeds the entity's default rules once
	EnsureDefaultRules(ctx context.Context, entityID string) error
}
