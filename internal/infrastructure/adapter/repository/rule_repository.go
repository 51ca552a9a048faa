package repository

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// evaluation order for system rules; id breaks ties deterministically
const ruleOrder = "priority ASC, created_at ASC, id ASC"

// RuleRepository implements persistence.RuleRepository using GORM
type RuleRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRuleRepository creates a new RuleRepository instance
func NewRuleRepository(db *gorm.DB, logger coreport.Logger) *RuleRepository {
	return &RuleRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RuleRepository) entityToModel(rule *entity.CategorizationRule) (*model.CategorizationRule, error) {
	matcher, err := marshalJSON(rule.Matcher)
	if err != nil {
		return nil, err
	}
	return &model.CategorizationRule{
		ID:                  rule.ID,
		EntityID:            rule.EntityID,
		Priority:            rule.Priority,
		Enabled:             rule.Enabled,
		Matcher:             matcher,
		CategoryID:          rule.CategoryID,
		ExplanationTemplate: rule.ExplanationTemplate,
		SeedKey:             nullableString(rule.SeedKey),
		CreatedAt:           rule.CreatedAt,
	}, nil
}

func (r *RuleRepository) modelToEntity(m *model.CategorizationRule) (*entity.CategorizationRule, error) {
	var matcher entity.MatcherSpec
	if err := unmarshalJSON(m.Matcher, &matcher); err != nil {
		return nil, err
	}
	return &entity.CategorizationRule{
		ID:                  m.ID,
		EntityID:            m.EntityID,
		Priority:            m.Priority,
		Enabled:             m.Enabled,
		Matcher:             matcher,
		CategoryID:          m.CategoryID,
		ExplanationTemplate: m.ExplanationTemplate,
		SeedKey:             derefString(m.SeedKey),
		CreatedAt:           m.CreatedAt,
	}, nil
}

func (r *RuleRepository) modelsToEntities(models []model.CategorizationRule) ([]*entity.CategorizationRule, error) {
	rules := make([]*entity.CategorizationRule, 0, len(models))
	for i := range models {
		rule, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Create saves a new rule
func (r *RuleRepository) Create(ctx context.Context, rule *entity.CategorizationRule) error {
	r.logger.Debug("Creating categorization rule", map[string]any{
		"rule_id":   rule.ID,
		"entity_id": rule.EntityID,
		"priority":  rule.Priority,
	})

	m, err := r.entityToModel(rule)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("Category").Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating rule", err, nil, map[string]any{
			"rule_id": rule.ID,
		})
	}
	return nil
}

// CreateIfAbsent inserts a seeded rule unless (entity_id, seed_key) already exists
func (r *RuleRepository) CreateIfAbsent(ctx context.Context, rule *entity.CategorizationRule) (bool, error) {
	m, err := r.entityToModel(rule)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "entity_id"}, {Name: "seed_key"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "seed_key IS NOT NULL"}}},
			DoNothing:   true,
		}).
		Create(m)
	if result.Error != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "seeding rule", result.Error, nil, map[string]any{
			"entity_id": rule.EntityID,
			"seed_key":  rule.SeedKey,
		})
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a rule within an entity
func (r *RuleRepository) GetByID(ctx context.Context, entityID, id string) (*entity.CategorizationRule, error) {
	var m model.CategorizationRule
	err := r.db.WithContext(ctx).
		Where("id = ? AND entity_id = ?", id, entityID).
		First(&m).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting rule", err, errs.ErrRuleNotFound, map[string]any{
			"rule_id":   id,
			"entity_id": entityID,
		})
	}
	return r.modelToEntity(&m)
}

// ListEnabled returns enabled rules in evaluation order
func (r *RuleRepository) ListEnabled(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error) {
	var models []model.CategorizationRule
	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND enabled = ?", entityID, true).
		Order(ruleOrder).
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing enabled rules", err, nil, map[string]any{
			"entity_id": entityID,
		})
	}
	return r.modelsToEntities(models)
}

// List returns every rule of the entity in evaluation order
func (r *RuleRepository) List(ctx context.Context, entityID string) ([]*entity.CategorizationRule, error) {
	var models []model.CategorizationRule
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order(ruleOrder).
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing rules", err, nil, map[string]any{
			"entity_id": entityID,
		})
	}
	return r.modelsToEntities(models)
}

// SetEnabled toggles a rule
func (r *RuleRepository) SetEnabled(ctx context.Context, entityID, id string, enabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategorizationRule{}).
		Where("id = ? AND entity_id = ?", id, entityID).
		Update("enabled", enabled)
	if result.Error != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "toggling rule", result.Error, nil, map[string]any{
			"rule_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrRuleNotFound
	}
	return nil
}

// OverrideRuleRepository implements persistence.OverrideRuleRepository using GORM
type OverrideRuleRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOverrideRuleRepository creates a new OverrideRuleRepository instance
func NewOverrideRuleRepository(db *gorm.DB, logger coreport.Logger) *OverrideRuleRepository {
	return &OverrideRuleRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new override rule
func (r *OverrideRuleRepository) Create(ctx context.Context, rule *entity.UserOverrideRule) error {
	r.logger.Debug("Creating override rule", map[string]any{
		"override_rule_id": rule.ID,
		"entity_id":        rule.EntityID,
		"created_by":       rule.CreatedBy,
	})

	matcher, err := marshalJSON(rule.Matcher)
	if err != nil {
		return err
	}
	m := &model.UserOverrideRule{
		ID:                            rule.ID,
		EntityID:                      rule.EntityID,
		Matcher:                       matcher,
		CategoryID:                    rule.CategoryID,
		Enabled:                       rule.Enabled,
		CreatedBy:                     rule.CreatedBy,
		SourceNormalizedTransactionID: rule.SourceNormalizedTransactionID,
		CreatedAt:                     rule.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("Category").Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating override rule", err, nil, map[string]any{
			"override_rule_id": rule.ID,
		})
	}
	return nil
}

// ListEnabled returns enabled override rules, most recent first
func (r *OverrideRuleRepository) ListEnabled(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error) {
	return r.list(r.db.WithContext(ctx).Where("entity_id = ? AND enabled = ?", entityID, true))
}

// List returns every override rule of the entity, most recent first
func (r *OverrideRuleRepository) List(ctx context.Context, entityID string) ([]*entity.UserOverrideRule, error) {
	return r.list(r.db.WithContext(ctx).Where("entity_id = ?", entityID))
}

func (r *OverrideRuleRepository) list(query *gorm.DB) ([]*entity.UserOverrideRule, error) {
	var models []model.UserOverrideRule
	if err := query.Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing override rules", err, nil, nil)
	}

	rules := make([]*entity.UserOverrideRule, 0, len(models))
	for i := range models {
		var matcher entity.MatcherSpec
		if err := unmarshalJSON(models[i].Matcher, &matcher); err != nil {
			return nil, err
		}
		rules = append(rules, &entity.UserOverrideRule{
			ID:                            models[i].ID,
			EntityID:                      models[i].EntityID,
			Matcher:                       matcher,
			CategoryID:                    models[i].CategoryID,
			Enabled:                       models[i].Enabled,
			CreatedBy:                     models[i].CreatedBy,
			SourceNormalizedTransactionID: models[i].SourceNormalizedTransactionID,
			CreatedAt:                     models[i].CreatedAt,
		})
	}
	return rules, nil
}
