package dto

import (
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
)

// MatcherDTO is the JSON form of a matcher; amounts are decimal strings
type MatcherDTO struct {
	Direction           string `json:"direction,omitempty"`
	MinAmount           string `json:"minAmount,omitempty"`
	MaxAmount           string `json:"maxAmount,omitempty"`
	DescriptionContains string `json:"descriptionContains,omitempty"`
	DescriptionRegex    string `json:"descriptionRegex,omitempty"`
	Reference           string `json:"reference,omitempty"`
}

// ToSpec parses the textual fields into a matcher spec
func (m MatcherDTO) ToSpec() (entity.MatcherSpec, error) {
	spec := entity.MatcherSpec{
		DescriptionContains: m.DescriptionContains,
		DescriptionRegex:    m.DescriptionRegex,
		Reference:           m.Reference,
	}

	if m.Direction != "" {
		d, err := entity.ParseDirection(m.Direction)
		if err != nil {
			return entity.MatcherSpec{}, err
		}
		spec.Direction = d
	}
	if m.MinAmount != "" {
		cents, err := entity.ParseAmount(m.MinAmount)
		if err != nil {
			return entity.MatcherSpec{}, errs.NewMatcherError("", "minAmount", err.Error())
		}
		spec.MinAmountInCents = &cents
	}
	if m.MaxAmount != "" {
		cents, err := entity.ParseAmount(m.MaxAmount)
		if err != nil {
			return entity.MatcherSpec{}, errs.NewMatcherError("", "maxAmount", err.Error())
		}
		spec.MaxAmountInCents = &cents
	}
	return spec, nil
}

// FromMatcherSpec formats a matcher spec for output
func FromMatcherSpec(spec entity.MatcherSpec) MatcherDTO {
	m := MatcherDTO{
		Direction:           string(spec.Direction),
		DescriptionContains: spec.DescriptionContains,
		DescriptionRegex:    spec.DescriptionRegex,
		Reference:           spec.Reference,
	}
	if spec.MinAmountInCents != nil {
		m.MinAmount = entity.AmountInCentsToString(*spec.MinAmountInCents)
	}
	if spec.MaxAmountInCents != nil {
		m.MaxAmount = entity.AmountInCentsToString(*spec.MaxAmountInCents)
	}
	return m
}

// CreateRuleRequest defines a system rule; the category is given by id or code
type CreateRuleRequest struct {
	Priority            int        `json:"priority"`
	Matcher             MatcherDTO `json:"matcher"`
	CategoryID          string     `json:"categoryId"`
	CategoryCode        string     `json:"categoryCode"`
	ExplanationTemplate string     `json:"explanationTemplate"`
	Enabled             *bool      `json:"enabled"`
}

// UpdateRuleRequest toggles a rule
type UpdateRuleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// RuleResponse is a stored system rule
type RuleResponse struct {
	ID                  string     `json:"id"`
	Priority            int        `json:"priority"`
	Enabled             bool       `json:"enabled"`
	Matcher             MatcherDTO `json:"matcher"`
	CategoryID          string     `json:"categoryId"`
	ExplanationTemplate string     `json:"explanationTemplate"`
	SeedKey             string     `json:"seedKey,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// OverrideRuleResponse is a rule learned from a manual correction
type OverrideRuleResponse struct {
	ID                            string     `json:"id"`
	Matcher                       MatcherDTO `json:"matcher"`
	CategoryID                    string     `json:"categoryId"`
	Enabled                       bool       `json:"enabled"`
	CreatedBy                     string     `json:"createdBy"`
	SourceNormalizedTransactionID string     `json:"sourceNormalizedTransactionId"`
	CreatedAt                     time.Time  `json:"createdAt"`
}

// FromRule maps a system rule
func FromRule(r *entity.CategorizationRule) RuleResponse {
	return RuleResponse{
		ID:                  r.ID,
		Priority:            r.Priority,
		Enabled:             r.Enabled,
		Matcher:             FromMatcherSpec(r.Matcher),
		CategoryID:          r.CategoryID,
		ExplanationTemplate: r.ExplanationTemplate,
		SeedKey:             r.SeedKey,
		CreatedAt:           r.CreatedAt,
	}
}

// FromRules maps rules preserving their evaluation order
func FromRules(rules []*entity.CategorizationRule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromRule(r))
	}
	return out
}

// FromOverrideRules maps override rules
func FromOverrideRules(rules []*entity.UserOverrideRule) []OverrideRuleResponse {
	out := make([]OverrideRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, OverrideRuleResponse{
			ID:                            r.ID,
			Matcher:                       FromMatcherSpec(r.Matcher),
			CategoryID:                    r.CategoryID,
			Enabled:                       r.Enabled,
			CreatedBy:                     r.CreatedBy,
			SourceNormalizedTransactionID: r.SourceNormalizedTransactionID,
			CreatedAt:                     r.CreatedAt,
		})
	}
	return out
}
