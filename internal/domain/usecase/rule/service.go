// Package rule manages system categorization rules and seeds per-entity defaults.
package rule

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/matcher"
)

// Service implements usecase.RuleUseCase
type Service struct {
	uow            persistence.UnitOfWork
	matcher        *matcher.Matcher
	classification usecase.ClassificationUseCase
	idGenerator    core.IDGenerator
	timeProvider   core.TimeProvider
	logger         core.Logger

	// entities whose defaults were seeded by this process
	seeded sync.Map
}

// NewService creates a rule service
func NewService(
	uow persistence.UnitOfWork,
	m *matcher.Matcher,
	classification usecase.ClassificationUseCase,
	idGenerator core.IDGenerator,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	return &Service{
		uow:            uow,
		matcher:        m,
		classification: classification,
		idGenerator:    idGenerator,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// CreateRule rejects a matcher that is empty, has min above max or an invalid regex
func (s *Service) CreateRule(ctx context.Context, req usecase.CreateRuleRequest) (*entity.CategorizationRule, error) {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return nil, err
	}
	if err := matcher.Validate("", req.Matcher); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.CategoryID, req.CategoryCode)
	if err != nil {
		return nil, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	rule := &entity.CategorizationRule{
		ID:                  s.idGenerator.NewID(),
		EntityID:            req.EntityID,
		Priority:            req.Priority,
		Enabled:             enabled,
		Matcher:             req.Matcher,
		CategoryID:          category.ID,
		ExplanationTemplate: req.ExplanationTemplate,
		CreatedAt:           s.timeProvider.Now(),
	}

	if err := s.uow.GetRuleRepository(ctx).Create(ctx, rule); err != nil {
		s.logger.Error("Failed to create rule", map[string]any{
			"entity_id": req.EntityID,
			"error":     err.Error(),
		})
		return nil, err
	}
	if err := s.matcher.Compile(rule.ID, rule.Matcher); err != nil {
		return nil, err
	}
	s.classification.InvalidateRules(req.EntityID)

	s.logger.Info("Rule created", map[string]any{
		"entity_id":   req.EntityID,
		"rule_id":     rule.ID,
		"category_id": rule.CategoryID,
		"priority":    rule.Priority,
	})
	return rule, nil
}

// ListRules returns all rules of an entity, disabled ones included
func (s *Service) ListRules(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error) {
	if err := entity.ValidateEntityID(entityID); err != nil {
		return nil, err
	}
	return s.uow.GetRuleRepository(ctx).List(ctx, entityID)
}

// SetRuleEnabled toggles a rule and drops the entity's cached rule set
func (s *Service) SetRuleEnabled(ctx context.Context, entityID, ruleID string, enabled bool) (*entity.CategorizationRule, error) {
	if err := entity.ValidateEntityID(entityID); err != nil {
		return nil, err
	}

	var rule *entity.CategorizationRule
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetRuleRepository(txCtx)
		if err := repo.SetEnabled(txCtx, entityID, ruleID, enabled); err != nil {
			return err
		}
		var err error
		rule, err = repo.GetByID(txCtx, entityID, ruleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !enabled {
		s.matcher.Forget(ruleID)
	}
	s.classification.InvalidateRules(entityID)

	s.logger.Info("Rule updated", map[string]any{
		"entity_id": entityID,
		"rule_id":   ruleID,
		"enabled":   enabled,
	})
	return rule, nil
}

// ListOverrideRules returns the rules learned from overrides
func (s *Service) ListOverrideRules(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error) {
	if err := entity.ValidateEntityID(entityID); err != nil {
		return nil, err
	}
	return s.uow.GetOverrideRuleRepository(ctx).List(ctx, entityID)
}

// EnsureDefaultRules inserts the default rules missing for an entity. Existing seeds,
// including ones a user disabled, are left alone.
func (s *Service) EnsureDefaultRules(ctx context.Context, entityID string) error {
	if err := entity.ValidateEntityID(entityID); err != nil {
		return err
	}
	if _, done := s.seeded.Load(entityID); done {
		return nil
	}

	categories, err := s.uow.GetCategoryRepository(ctx).List(ctx)
	if err != nil {
		return err
	}
	catalog := entity.NewCategoryCatalog(categories)

	inserted := 0
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		inserted = 0
		repo := s.uow.GetRuleRepository(txCtx)
		for _, d := range defaultRules {
			category, ok := catalog.ByCode(d.categoryCode)
			if !ok {
				s.logger.Warn("Default rule category is not seeded", map[string]any{
					"seed_key":      d.seedKey,
					"category_code": d.categoryCode,
				})
				continue
			}

			created, err := repo.CreateIfAbsent(txCtx, &entity.CategorizationRule{
				ID:                  s.idGenerator.NewID(),
				EntityID:            entityID,
				Priority:            d.priority,
				Enabled:             true,
				Matcher:             d.matcher,
				CategoryID:          category.ID,
				ExplanationTemplate: d.explanation,
				SeedKey:             d.seedKey,
				CreatedAt:           s.timeProvider.Now(),
			})
			if err != nil {
				return fmt.Errorf("seed rule %s: %w", d.seedKey, err)
			}
			if created {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed default rules", map[string]any{
			"entity_id": entityID,
			"error":     err.Error(),
		})
		return err
	}

	s.seeded.Store(entityID, struct{}{})
	if inserted > 0 {
		s.classification.InvalidateRules(entityID)
		s.logger.Info("Default rules seeded", map[string]any{
			"entity_id": entityID,
			"inserted":  inserted,
		})
	}
	return nil
}

func (s *Service) resolveCategory(ctx context.Context, id, code string) (*entity.Category, error) {
	repo := s.uow.GetCategoryRepository(ctx)
	switch {
	case strings.TrimSpace(id) != "":
		return repo.GetByID(ctx, id)
	case strings.TrimSpace(code) != "":
		return repo.GetByCode(ctx, entity.NormalizeCategoryCode(code))
	default:
		return nil, fmt.Errorf("%w: categoryId or categoryCode", errs.ErrMissingField)
	}
}
