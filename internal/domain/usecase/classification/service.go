// Package classification decides a category for each normalized transaction by running
// override rules, system rules, same-description history and the AI collaborator in order.
package classification

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/matcher"
)

// Config tunes the history and AI stages
type Config struct {
	HistoryWindow  int
	AITimeout      core.Duration
	AIMaxAttempts  int
	AIRetryBackoff core.Duration
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		HistoryWindow:  10,
		AITimeout:      10 * core.Second,
		AIMaxAttempts:  3,
		AIRetryBackoff: 500 * core.Millisecond,
	}
}

// Service runs the classification pipeline
type Service struct {
	uow          persistence.UnitOfWork
	matcher      *matcher.Matcher
	cache        *RuleSetCache
	stages       []Stage
	idGenerator  core.IDGenerator
	timeProvider core.TimeProvider
	logger       core.Logger
	config       Config
}

// NewService creates a classification service
func NewService(
	uow persistence.UnitOfWork,
	m *matcher.Matcher,
	aiClassifier classifier.Classifier,
	idGenerator core.IDGenerator,
	timeProvider core.TimeProvider,
	logger core.Logger,
	config Config,
) *Service {
	if config.HistoryWindow <= 0 {
		config.HistoryWindow = DefaultConfig().HistoryWindow
	}
	if config.AIMaxAttempts <= 0 {
		config.AIMaxAttempts = 1
	}

	s := &Service{
		uow:          uow,
		matcher:      m,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
	s.cache = NewRuleSetCache(s.loadRuleSet)
	s.stages = []Stage{
		&overrideStage{matcher: m},
		&ruleStage{matcher: m},
		&historyStage{},
		&aiStage{classifier: aiClassifier, timeProvider: timeProvider, logger: logger, config: config},
	}
	return s
}

// RuleSet returns the entity's current rule snapshot
func (s *Service) RuleSet(ctx context.Context, entityID string) (*entity.RuleSet, error) {
	return s.cache.Get(ctx, entityID)
}

// InvalidateRules drops the cached snapshot so the next batch sees rule changes
func (s *Service) InvalidateRules(entityID string) {
	s.cache.Invalidate(entityID)
	s.logger.Debug("Rule set invalidated", map[string]any{"entity_id": entityID})
}

// Decide runs the stages in order; the first match wins. Any stage failure
// leaves the transaction uncategorized.
func (s *Service) Decide(ctx context.Context, rs *entity.RuleSet, tx *entity.NormalizedTransaction) entity.Decision {
	run := &Run{RuleSet: rs, Tx: tx, loadHistory: s.loadHistory}

	for _, stage := range s.stages {
		decision, err := stage.Evaluate(ctx, run)
		if err != nil {
			s.logger.Warn("Classification stage failed, leaving transaction uncategorized", map[string]any{
				"stage":                     stage.Name(),
				"normalized_transaction_id": tx.ID,
				"error":                     err.Error(),
			})
			return Uncategorized()
		}
		if decision != nil {
			return *decision
		}
	}
	return Uncategorized()
}

// Classify decides and upserts the categorization of tx
func (s *Service) Classify(
	ctx context.Context,
	rs *entity.RuleSet,
	tx *entity.NormalizedTransaction,
) (*entity.TransactionCategorization, error) {
	return s.Record(ctx, tx, s.Decide(ctx, rs, tx))
}

// Record upserts decision as the categorization of tx
func (s *Service) Record(
	ctx context.Context,
	tx *entity.NormalizedTransaction,
	decision entity.Decision,
) (*entity.TransactionCategorization, error) {
	categorization := entity.NewCategorization(s.idGenerator.NewID(), tx, decision, s.timeProvider.Now())

	if err := s.uow.GetCategorizationRepository(ctx).Upsert(ctx, categorization); err != nil {
		s.logger.Error("Failed to store categorization", map[string]any{
			"normalized_transaction_id": tx.ID,
			"error":                     err.Error(),
		})
		return nil, fmt.Errorf("store categorization: %w", err)
	}

	s.logger.Debug("Transaction classified", map[string]any{
		"normalized_transaction_id": tx.ID,
		"method":                    categorization.Method,
		"status":                    categorization.Status,
		"confidence":                categorization.Confidence,
	})
	return categorization, nil
}

func (s *Service) loadHistory(ctx context.Context, tx *entity.NormalizedTransaction) ([]entity.HistoryEntry, error) {
	return s.uow.GetNormalizedTransactionRepository(ctx).
		FindRecentByDescription(ctx, tx.EntityID, tx.DescriptionClean, tx.ID, s.config.HistoryWindow)
}

func (s *Service) loadRuleSet(ctx context.Context, entityID string) (*entity.RuleSet, error) {
	overrides, err := s.uow.GetOverrideRuleRepository(ctx).ListEnabled(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("load override rules: %w", err)
	}
	rules, err := s.uow.GetRuleRepository(ctx).ListEnabled(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	categories, err := s.uow.GetCategoryRepository(ctx).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	for _, rule := range rules {
		if err := s.matcher.Compile(rule.ID, rule.Matcher); err != nil {
			s.logger.Warn("Stored rule has an invalid matcher and will never match", map[string]any{
				"rule_id": rule.ID,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Debug("Rule set loaded", map[string]any{
		"entity_id": entityID,
		"overrides": len(overrides),
		"rules":     len(rules),
	})

	return &entity.RuleSet{
		EntityID:   entityID,
		Overrides:  overrides,
		Rules:      rules,
		Categories: entity.NewCategoryCatalog(categories),
		LoadedAt:   s.timeProvider.Now(),
	}, nil
}
