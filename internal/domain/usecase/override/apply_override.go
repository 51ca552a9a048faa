// Package override turns a user's manual correction into a learned rule.
package override

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
)

// AnonymousActor is recorded when the caller is not identified
const AnonymousActor = "anonymous"

// Service applies manual category corrections
type Service struct {
	uow            persistence.UnitOfWork
	classification usecase.ClassificationUseCase
	idGenerator    core.IDGenerator
	timeProvider   core.TimeProvider
	logger         core.Logger
}

// NewService creates an override service
func NewService(
	uow persistence.UnitOfWork,
	classification usecase.ClassificationUseCase,
	idGenerator core.IDGenerator,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	return &Service{
		uow:            uow,
		classification: classification,
		idGenerator:    idGenerator,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// ApplyOverride creates the override rule, upserts the categorization and appends
// the audit entry in one transaction. The entity's cached rule set is dropped
// once the transaction commits.
func (s *Service) ApplyOverride(ctx context.Context, req usecase.OverrideRequest) (*usecase.OverrideResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		actor = AnonymousActor
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = entity.DefaultOverrideReason
	}

	var result *usecase.OverrideResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		tx, err := s.uow.GetNormalizedTransactionRepository(txCtx).GetByID(txCtx, req.EntityID, req.NormalizedTransactionID)
		if err != nil {
			return err
		}

		category, err := s.resolveCategory(txCtx, req)
		if err != nil {
			return err
		}

		categorizationRepo := s.uow.GetCategorizationRepository(txCtx)
		before, err := categorizationRepo.GetByNormalizedID(txCtx, req.EntityID, tx.ID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return err
		}

		now := s.timeProvider.Now()

		rule := entity.NewOverrideRuleFrom(s.idGenerator.NewID(), tx, category.ID, actor, now)
		if err := s.uow.GetOverrideRuleRepository(txCtx).Create(txCtx, rule); err != nil {
			return fmt.Errorf("create override rule: %w", err)
		}

		categoryID, ruleID := category.ID, rule.ID
		after := entity.NewCategorization(s.idGenerator.NewID(), tx, entity.Decision{
			CategoryID:  &categoryID,
			Method:      entity.MethodManual,
			Confidence:  entity.ConfidenceManual,
			Explanation: entity.OverrideExplanation,
			Status:      entity.StatusConfirmed,
			RuleID:      &ruleID,
		}, now)
		if before != nil {
			after.ID = before.ID
		}
		if err := categorizationRepo.Upsert(txCtx, after); err != nil {
			return fmt.Errorf("upsert categorization: %w", err)
		}

		audit := &entity.AuditLog{
			ID:        s.idGenerator.NewID(),
			EntityID:  req.EntityID,
			Actor:     actor,
			Action:    entity.AuditCategoryOverride,
			TargetID:  tx.ID,
			Reason:    reason,
			Before:    before.Snapshot(),
			After:     after.Snapshot(),
			CreatedAt: now,
		}
		if err := s.uow.GetAuditLogRepository(txCtx).Append(txCtx, audit); err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}

		result = &usecase.OverrideResult{Categorization: after, OverrideRuleID: rule.ID}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to apply override", map[string]any{
			"entity_id":                 req.EntityID,
			"normalized_transaction_id": req.NormalizedTransactionID,
			"error":                     err.Error(),
		})
		return nil, err
	}

	s.classification.InvalidateRules(req.EntityID)

	s.logger.Info("Override applied", map[string]any{
		"entity_id":                 req.EntityID,
		"normalized_transaction_id": req.NormalizedTransactionID,
		"override_rule_id":          result.OverrideRuleID,
		"actor":                     actor,
	})
	return result, nil
}

func (s *Service) resolveCategory(ctx context.Context, req usecase.OverrideRequest) (*entity.Category, error) {
	repo := s.uow.GetCategoryRepository(ctx)
	if id := strings.TrimSpace(req.CategoryID); id != "" {
		return repo.GetByID(ctx, id)
	}
	return repo.GetByCode(ctx, entity.NormalizeCategoryCode(req.CategoryCode))
}

func validate(req usecase.OverrideRequest) error {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return err
	}
	if strings.TrimSpace(req.NormalizedTransactionID) == "" {
		return fmt.Errorf("%w: normalizedTransactionId", errs.ErrMissingField)
	}
	if strings.TrimSpace(req.CategoryID) == "" && strings.TrimSpace(req.CategoryCode) == "" {
		return fmt.Errorf("%w: categoryId or categoryCode", errs.ErrMissingField)
	}
	return nil
}
