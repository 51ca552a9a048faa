// Package matcher evaluates rule matcher specs against normalized transactions.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
)

type compiledPattern struct {
	source string
	re     *regexp.Regexp
	err    error
}

// Matcher holds compiled description patterns keyed by rule id.
// It is safe for concurrent use.
type Matcher struct {
	mu       sync.RWMutex
	patterns map[string]compiledPattern
	logger   core.Logger
}

// New creates a matcher with an empty pattern cache
func New(logger core.Logger) *Matcher {
	return &Matcher{
		patterns: make(map[string]compiledPattern),
		logger:   logger,
	}
}

// Validate checks a spec without touching the cache
func Validate(ruleID string, spec entity.MatcherSpec) error {
	if spec.IsEmpty() {
		return errs.NewMatcherError(ruleID, "matcher", "at least one constraint is required")
	}
	if spec.Direction != "" && !spec.Direction.IsValid() {
		return errs.NewMatcherError(ruleID, "direction", fmt.Sprintf("unknown direction %q", spec.Direction))
	}
	if spec.MinAmountInCents != nil && *spec.MinAmountInCents < 0 {
		return errs.NewMatcherError(ruleID, "minAmount", "must not be negative")
	}
	if spec.MaxAmountInCents != nil && *spec.MaxAmountInCents < 0 {
		return errs.NewMatcherError(ruleID, "maxAmount", "must not be negative")
	}
	if spec.MinAmountInCents != nil && spec.MaxAmountInCents != nil &&
		*spec.MinAmountInCents > *spec.MaxAmountInCents {
		return errs.NewMatcherError(ruleID, "amount", "minAmount exceeds maxAmount")
	}
	if spec.DescriptionRegex != "" {
		if _, err := compile(spec.DescriptionRegex); err != nil {
			return errs.NewMatcherError(ruleID, "descriptionRegex", err.Error())
		}
	}
	return nil
}

// Compile validates the spec and caches its regex under the rule id
func (m *Matcher) Compile(ruleID string, spec entity.MatcherSpec) error {
	if err := Validate(ruleID, spec); err != nil {
		return err
	}
	if spec.DescriptionRegex != "" {
		m.pattern(ruleID, spec.DescriptionRegex)
	}
	return nil
}

// Forget drops the cached pattern of a rule
func (m *Matcher) Forget(ruleID string) {
	m.mu.Lock()
	delete(m.patterns, ruleID)
	m.mu.Unlock()
}

// Matches reports whether every constraint set on the spec holds for tx.
// A regex that fails to compile makes the rule not match.
func (m *Matcher) Matches(ruleID string, spec entity.MatcherSpec, tx *entity.NormalizedTransaction) bool {
	if spec.IsEmpty() {
		return false
	}
	if spec.Direction != "" && spec.Direction != tx.Direction {
		return false
	}
	if spec.MinAmountInCents != nil && tx.AmountInCents < *spec.MinAmountInCents {
		return false
	}
	if spec.MaxAmountInCents != nil && tx.AmountInCents > *spec.MaxAmountInCents {
		return false
	}
	if spec.DescriptionContains != "" &&
		!strings.Contains(strings.ToLower(tx.DescriptionClean), strings.ToLower(spec.DescriptionContains)) {
		return false
	}
	if spec.Reference != "" && spec.Reference != tx.ReferenceExtracted {
		return false
	}
	if spec.DescriptionRegex != "" {
		p := m.pattern(ruleID, spec.DescriptionRegex)
		if p.err != nil || !p.re.MatchString(tx.DescriptionClean) {
			return false
		}
	}
	return true
}

func (m *Matcher) pattern(ruleID, source string) compiledPattern {
	m.mu.RLock()
	p, ok := m.patterns[ruleID]
	m.mu.RUnlock()
	if ok && p.source == source {
		return p
	}

	re, err := compile(source)
	p = compiledPattern{source: source, re: re, err: err}
	if err != nil {
		m.logger.Warn("Rule regex failed to compile, rule will not match", map[string]any{
			"rule_id": ruleID,
			"pattern": source,
			"error":   err.Error(),
		})
	}

	m.mu.Lock()
	m.patterns[ruleID] = p
	m.mu.Unlock()
	return p
}

func compile(source string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + source)
}
