package classification

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/matcher"
)

// Stage is one step of the ordered decision procedure. A nil decision with a nil
// error passes the transaction to the next stage.
type Stage interface {
	Name() string
	Evaluate(ctx context.Context, run *Run) (*entity.Decision, error)
}

// HistoryLoader fetches recent same-description transactions
type HistoryLoader func(ctx context.Context, tx *entity.NormalizedTransaction) ([]entity.HistoryEntry, error)

// Run carries one transaction through the stages
type Run struct {
	RuleSet *entity.RuleSet
	Tx      *entity.NormalizedTransaction

	loadHistory HistoryLoader
	history     []entity.HistoryEntry
	historyErr  error
	loaded      bool
}

// History loads the same-description window once per run
func (r *Run) History(ctx context.Context) ([]entity.HistoryEntry, error) {
	if !r.loaded {
		r.history, r.historyErr = r.loadHistory(ctx, r.Tx)
		r.loaded = true
	}
	return r.history, r.historyErr
}

func categoryName(rs *entity.RuleSet, categoryID string) string {
	if cat, ok := rs.Categories.ByID(categoryID); ok {
		return cat.Name
	}
	return categoryID
}

// overrideStage applies learned rules, most recent first
type overrideStage struct {
	matcher *matcher.Matcher
}

func (s *overrideStage) Name() string { return "override" }

func (s *overrideStage) Evaluate(_ context.Context, run *Run) (*entity.Decision, error) {
	for _, rule := range run.RuleSet.Overrides {
		if !rule.Enabled || !s.matcher.Matches(rule.ID, rule.Matcher, run.Tx) {
			continue
		}
		categoryID, ruleID := rule.CategoryID, rule.ID
		return &entity.Decision{
			CategoryID:  &categoryID,
			Method:      entity.MethodManual,
			Confidence:  entity.ConfidenceManual,
			Explanation: fmt.Sprintf("Learned from a manual correction to %s", categoryName(run.RuleSet, categoryID)),
			Status:      entity.StatusConfirmed,
			RuleID:      &ruleID,
		}, nil
	}
	return nil, nil
}

// ruleStage applies system rules in priority order
type ruleStage struct {
	matcher *matcher.Matcher
}

func (s *ruleStage) Name() string { return "rule" }

func (s *ruleStage) Evaluate(_ context.Context, run *Run) (*entity.Decision, error) {
	for _, rule := range run.RuleSet.Rules {
		if !rule.Enabled || !s.matcher.Matches(rule.ID, rule.Matcher, run.Tx) {
			continue
		}
		categoryID, ruleID := rule.CategoryID, rule.ID
		return &entity.Decision{
			CategoryID:  &categoryID,
			Method:      entity.MethodRule,
			Confidence:  entity.ConfidenceRule,
			Explanation: rule.RenderExplanation(categoryName(run.RuleSet, categoryID), run.Tx),
			Status:      entity.StatusConfirmed,
			RuleID:      &ruleID,
		}, nil
	}
	return nil, nil
}

// historyStage votes over recent transactions with the same cleaned description.
// Recurrence alone never confirms a category.
type historyStage struct{}

func (s *historyStage) Name() string { return "history" }

func (s *historyStage) Evaluate(ctx context.Context, run *Run) (*entity.Decision, error) {
	entries, err := run.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	vote, ok := pickHistoryCategory(entries)
	if !ok {
		return nil, nil
	}
	categoryID := vote.CategoryID
	return &entity.Decision{
		CategoryID: &categoryID,
		Method:     entity.MethodHistory,
		Confidence: entity.ConfidenceHistory,
		Explanation: fmt.Sprintf("%d of %d recent transactions with this description were %s",
			vote.Count, vote.Considered, categoryName(run.RuleSet, categoryID)),
		Status: entity.StatusNeedsReview,
	}, nil
}

// aiStage asks the external classifier, retrying only when it is unavailable
type aiStage struct {
	classifier   classifier.Classifier
	timeProvider core.TimeProvider
	logger       core.Logger
	config       Config
}

func (s *aiStage) Name() string { return "ai" }

func (s *aiStage) Evaluate(ctx context.Context, run *Run) (*entity.Decision, error) {
	entries, err := run.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	req := classifier.Request{
		EntityID:          run.Tx.EntityID,
		Description:       run.Tx.DescriptionClean,
		Direction:         run.Tx.Direction,
		AmountInCents:     run.Tx.AmountInCents,
		Reference:         run.Tx.ReferenceExtracted,
		AllowedCategories: run.RuleSet.Categories.All(),
		History:           historyHints(run.RuleSet, entries),
	}

	switch res := s.classify(ctx, req).(type) {
	case classifier.Matched:
		return s.decide(run, res), nil
	case classifier.NoMatch:
		s.logger.Debug("AI classifier found no category", map[string]any{
			"normalized_transaction_id": run.Tx.ID,
			"reason":                    res.Reason,
		})
	case classifier.ServiceUnavailable:
		s.logger.Warn("AI classifier unavailable, leaving transaction uncategorized", map[string]any{
			"normalized_transaction_id": run.Tx.ID,
			"error":                     errorString(res.Err),
		})
	}
	return nil, nil
}

func (s *aiStage) classify(ctx context.Context, req classifier.Request) classifier.Result {
	backoff := s.config.AIRetryBackoff
	for attempt := 1; ; attempt++ {
		attemptCtx, cancel := s.timeProvider.WithTimeout(ctx, s.config.AITimeout)
		res := s.classifier.Classify(attemptCtx, req)
		cancel()

		unavailable, retryable := res.(classifier.ServiceUnavailable)
		if !retryable || attempt >= s.config.AIMaxAttempts {
			return res
		}

		s.logger.Warn("AI classifier call failed, retrying", map[string]any{
			"attempt": attempt,
			"backoff": backoff.Std().String(),
			"error":   errorString(unavailable.Err),
		})
		if err := s.timeProvider.Sleep(ctx, backoff); err != nil {
			return classifier.ServiceUnavailable{Err: err}
		}
		backoff *= 2
	}
}

func (s *aiStage) decide(run *Run, res classifier.Matched) *entity.Decision {
	if res.CategoryCode == classifier.Unclassified || res.Confidence < entity.AIMinConfidence {
		return nil
	}
	cat, ok := run.RuleSet.Categories.ByCode(res.CategoryCode)
	if !ok {
		s.logger.Warn("AI classifier returned an unknown category code", map[string]any{
			"normalized_transaction_id": run.Tx.ID,
			"category_code":             res.CategoryCode,
		})
		return nil
	}

	confidence := res.Confidence
	if confidence > 1 {
		confidence = 1
	}
	status := entity.StatusNeedsReview
	if confidence >= entity.AIConfirmConfidence {
		status = entity.StatusConfirmed
	}
	explanation := res.Explanation
	if explanation == "" {
		explanation = "Suggested by AI classification as " + cat.Name
	}

	categoryID := cat.ID
	return &entity.Decision{
		CategoryID:  &categoryID,
		Method:      entity.MethodAI,
		Confidence:  confidence,
		Explanation: explanation,
		Status:      status,
	}
}

func historyHints(rs *entity.RuleSet, entries []entity.HistoryEntry) []classifier.HistoryHint {
	hints := make([]classifier.HistoryHint, 0, len(entries))
	for _, e := range entries {
		hint := classifier.HistoryHint{Date: e.TransactionDate}
		if e.CategoryID != nil {
			if cat, ok := rs.Categories.ByID(*e.CategoryID); ok {
				hint.CategoryCode = cat.Code
			}
		}
		hints = append(hints, hint)
	}
	return hints
}

// Uncategorized is the terminal decision when no stage matched
func Uncategorized() entity.Decision {
	return entity.Decision{
		Method:      entity.MethodUncategorized,
		Confidence:  0,
		Explanation: "No rule, history or AI suggestion matched",
		Status:      entity.StatusNeedsReview,
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
