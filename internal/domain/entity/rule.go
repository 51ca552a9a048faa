package entity

import (
	"strings"
	"time"
)

// MatcherSpec is the predicate shared by system and override rules.
// Zero-valued fields are unconstrained; all set fields must hold.
type MatcherSpec struct {
	Direction           Direction `json:"direction,omitempty"`
	MinAmountInCents    *int64    `json:"minAmount,omitempty"`
	MaxAmountInCents    *int64    `json:"maxAmount,omitempty"`
	DescriptionContains string    `json:"descriptionContains,omitempty"`
	DescriptionRegex    string    `json:"descriptionRegex,omitempty"`
	Reference           string    `json:"reference,omitempty"`
}

// IsEmpty reports whether the spec constrains nothing, i.e. would match every transaction
func (m MatcherSpec) IsEmpty() bool {
	return m.Direction == "" &&
		m.MinAmountInCents == nil &&
		m.MaxAmountInCents == nil &&
		m.DescriptionContains == "" &&
		m.DescriptionRegex == "" &&
		m.Reference == ""
}

// CategorizationRule is an entity-scoped deterministic rule.
// Lower priority values take precedence; ties fall back to creation order.
type CategorizationRule struct {
	ID                  string
	EntityID            string
	Priority            int
	Enabled             bool
	Matcher             MatcherSpec
	CategoryID          string
	ExplanationTemplate string
	SeedKey             string
	CreatedAt           time.Time
}

// RenderExplanation fills the {category}, {description} and {reference} placeholders
func (r *CategorizationRule) RenderExplanation(categoryName string, tx *NormalizedTransaction) string {
	template := r.ExplanationTemplate
	if template == "" {
		template = "Matched rule for {category}"
	}
	return strings.NewReplacer(
		"{category}", categoryName,
		"{description}", tx.DescriptionClean,
		"{reference}", tx.ReferenceExtracted,
	).Replace(template)
}

// UserOverrideRule is synthesized from a user's manual correction and
// always outranks CategorizationRule
type UserOverrideRule struct {
	ID                            string
	EntityID                      string
	Matcher                       MatcherSpec
	CategoryID                    string
	Enabled                       bool
	CreatedBy                     string
	SourceNormalizedTransactionID string
	CreatedAt                     time.Time
}

// NewOverrideRuleFrom generalizes a corrected transaction into a rule matching
// the same direction and any description containing the cleaned description
func NewOverrideRuleFrom(id string, tx *NormalizedTransaction, categoryID, actor string, now time.Time) *UserOverrideRule {
	return &UserOverrideRule{
		ID:       id,
		EntityID: tx.EntityID,
		Matcher: MatcherSpec{
			Direction:           tx.Direction,
			DescriptionContains: tx.DescriptionClean,
		},
		CategoryID:                    categoryID,
		Enabled:                       true,
		CreatedBy:                     actor,
		SourceNormalizedTransactionID: tx.ID,
		CreatedAt:                     now,
	}
}

// RuleSet is the per-entity snapshot a classification batch works against.
// Overrides are most recent first; rules are in evaluation order.
type RuleSet struct {
	EntityID   string
	Overrides  []*UserOverrideRule
	Rules      []*CategorizationRule
	Categories *CategoryCatalog
	LoadedAt   time.Time
}
