package repository

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AuditLogRepository implements persistence.AuditLogRepository using GORM
type AuditLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuditLogRepository creates a new AuditLogRepository instance
func NewAuditLogRepository(db *gorm.DB, logger coreport.Logger) *AuditLogRepository {
	return &AuditLogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func snapshotToJSON(s *entity.CategorizationSnapshot) (*string, error) {
	if s == nil {
		return nil, nil
	}
	data, err := marshalJSON(s)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func snapshotFromJSON(data *string) (*entity.CategorizationSnapshot, error) {
	if data == nil {
		return nil, nil
	}
	var s entity.CategorizationSnapshot
	if err := unmarshalJSON(*data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Append saves an audit entry
func (r *AuditLogRepository) Append(ctx context.Context, log *entity.AuditLog) error {
	r.logger.Debug("Appending audit log", map[string]any{
		"audit_id":  log.ID,
		"action":    log.Action,
		"target_id": log.TargetID,
		"actor":     log.Actor,
	})

	before, err := snapshotToJSON(log.Before)
	if err != nil {
		return err
	}
	after, err := snapshotToJSON(log.After)
	if err != nil {
		return err
	}

	m := &model.AuditLog{
		ID:        log.ID,
		EntityID:  log.EntityID,
		Actor:     log.Actor,
		Action:    string(log.Action),
		TargetID:  log.TargetID,
		Reason:    log.Reason,
		Before:    before,
		After:     after,
		CreatedAt: log.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "appending audit log", err, nil, map[string]any{
			"audit_id": log.ID,
		})
	}
	return nil
}

// ListByTarget returns an entity's audit entries for one target, oldest first
func (r *AuditLogRepository) ListByTarget(ctx context.Context, entityID, targetID string) ([]*entity.AuditLog, error) {
	var models []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND target_id = ?", entityID, targetID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing audit logs", err, nil, map[string]any{
			"entity_id": entityID,
			"target_id": targetID,
		})
	}

	logs := make([]*entity.AuditLog, 0, len(models))
	for i := range models {
		before, err := snapshotFromJSON(models[i].Before)
		if err != nil {
			return nil, err
		}
		after, err := snapshotFromJSON(models[i].After)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &entity.AuditLog{
			ID:        models[i].ID,
			EntityID:  models[i].EntityID,
			Actor:     models[i].Actor,
			Action:    entity.AuditAction(models[i].Action),
			TargetID:  models[i].TargetID,
			Reason:    models[i].Reason,
			Before:    before,
			After:     after,
			CreatedAt: models[i].CreatedAt,
		})
	}
	return logs, nil
}
