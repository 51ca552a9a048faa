package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const batchInsertSize = 500

// RawTransactionRepository implements persistence.RawTransactionRepository using GORM
type RawTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRawTransactionRepository creates a new RawTransactionRepository instance
func NewRawTransactionRepository(db *gorm.DB, logger coreport.Logger) *RawTransactionRepository {
	return &RawTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RawTransactionRepository) entityToModel(raw *entity.RawTransaction) (*model.RawTransaction, error) {
	provenance, err := marshalJSON(raw.Provenance)
	if err != nil {
		return nil, err
	}
	return &model.RawTransaction{
		ID:              raw.ID,
		EntityID:        raw.EntityID,
		SourceType:      string(raw.SourceType),
		TransactionDate: raw.TransactionDate,
		AmountInCents:   raw.AmountInCents,
		Direction:       string(raw.Direction),
		DescriptionRaw:  raw.DescriptionRaw,
		ReferenceRaw:    raw.ReferenceRaw,
		Provenance:      provenance,
		UploadedFileID:  raw.UploadedFileID,
		CreatedAt:       raw.CreatedAt,
	}, nil
}

func (r *RawTransactionRepository) modelToEntity(m *model.RawTransaction) (*entity.RawTransaction, error) {
	provenance := map[string]any{}
	if err := unmarshalJSON(m.Provenance, &provenance); err != nil {
		return nil, err
	}
	return &entity.RawTransaction{
		ID:              m.ID,
		EntityID:        m.EntityID,
		SourceType:      entity.SourceType(m.SourceType),
		TransactionDate: m.TransactionDate,
		AmountInCents:   m.AmountInCents,
		Direction:       entity.Direction(m.Direction),
		DescriptionRaw:  m.DescriptionRaw,
		ReferenceRaw:    m.ReferenceRaw,
		Provenance:      provenance,
		UploadedFileID:  m.UploadedFileID,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// Create saves one raw transaction
func (r *RawTransactionRepository) Create(ctx context.Context, raw *entity.RawTransaction) error {
	r.logger.Debug("Creating raw transaction", map[string]any{
		"raw_transaction_id": raw.ID,
		"entity_id":          raw.EntityID,
	})

	m, err := r.entityToModel(raw)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating raw transaction", err, nil, map[string]any{
			"raw_transaction_id": raw.ID,
		})
	}
	return nil
}

// CreateBatch saves raw transactions in batches
func (r *RawTransactionRepository) CreateBatch(ctx context.Context, raws []*entity.RawTransaction) error {
	if len(raws) == 0 {
		return nil
	}

	r.logger.Debug("Creating raw transaction batch", map[string]any{
		"count": len(raws),
	})

	models := make([]*model.RawTransaction, 0, len(raws))
	for _, raw := range raws {
		m, err := r.entityToModel(raw)
		if err != nil {
			return err
		}
		models = append(models, m)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, batchInsertSize).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating raw transaction batch", err, nil, map[string]any{
			"count": len(raws),
		})
	}
	return nil
}

// GetByID retrieves a raw transaction within an entity
func (r *RawTransactionRepository) GetByID(ctx context.Context, entityID, id string) (*entity.RawTransaction, error) {
	var m model.RawTransaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND entity_id = ?", id, entityID).
		First(&m).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting raw transaction", err, errs.ErrTransactionNotFound, map[string]any{
			"raw_transaction_id": id,
			"entity_id":          entityID,
		})
	}
	return r.modelToEntity(&m)
}

// CountByUpload counts raw rows attached to an upload
func (r *RawTransactionRepository) CountByUpload(ctx context.Context, uploadedFileID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RawTransaction{}).
		Where("uploaded_file_id = ?", uploadedFileID).
		Count(&count).Error
	if err != nil {
		return 0, handleDatabaseError(r.logger, r.errorClassifier, "counting upload rows", err, nil, map[string]any{
			"uploaded_file_id": uploadedFileID,
		})
	}
	return count, nil
}

// NormalizedTransactionRepository implements persistence.NormalizedTransactionRepository using GORM
type NormalizedTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewNormalizedTransactionRepository creates a new NormalizedTransactionRepository instance
func NewNormalizedTransactionRepository(db *gorm.DB, logger coreport.Logger) *NormalizedTransactionRepository {
	return &NormalizedTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *NormalizedTransactionRepository) entityToModel(n *entity.NormalizedTransaction) (*model.NormalizedTransaction, error) {
	diff, err := marshalJSON(n.Diff)
	if err != nil {
		return nil, err
	}
	return &model.NormalizedTransaction{
		ID:                   n.ID,
		EntityID:             n.EntityID,
		RawTransactionID:     n.RawTransactionID,
		DescriptionClean:     n.DescriptionClean,
		ReferenceExtracted:   n.ReferenceExtracted,
		NormalizationVersion: n.NormalizationVersion,
		Diff:                 diff,
		Direction:            string(n.Direction),
		AmountInCents:        n.AmountInCents,
		TransactionDate:      n.TransactionDate,
		CreatedAt:            n.CreatedAt,
	}, nil
}

func (r *NormalizedTransactionRepository) modelToEntity(m *model.NormalizedTransaction) (*entity.NormalizedTransaction, error) {
	var diff entity.NormalizationDiff
	if err := unmarshalJSON(m.Diff, &diff); err != nil {
		return nil, err
	}
	return &entity.NormalizedTransaction{
		ID:                   m.ID,
		EntityID:             m.EntityID,
		RawTransactionID:     m.RawTransactionID,
		DescriptionClean:     m.DescriptionClean,
		ReferenceExtracted:   m.ReferenceExtracted,
		NormalizationVersion: m.NormalizationVersion,
		Diff:                 diff,
		Direction:            entity.Direction(m.Direction),
		AmountInCents:        m.AmountInCents,
		TransactionDate:      m.TransactionDate,
		CreatedAt:            m.CreatedAt,
	}, nil
}

// Create saves one normalized transaction
func (r *NormalizedTransactionRepository) Create(ctx context.Context, n *entity.NormalizedTransaction) error {
	r.logger.Debug("Creating normalized transaction", map[string]any{
		"normalized_transaction_id": n.ID,
		"raw_transaction_id":        n.RawTransactionID,
	})

	m, err := r.entityToModel(n)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("RawTransaction").Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating normalized transaction", err, nil, map[string]any{
			"normalized_transaction_id": n.ID,
		})
	}
	return nil
}

// CreateBatch saves normalized transactions in batches
func (r *NormalizedTransactionRepository) CreateBatch(ctx context.Context, normalized []*entity.NormalizedTransaction) error {
	if len(normalized) == 0 {
		return nil
	}

	models := make([]*model.NormalizedTransaction, 0, len(normalized))
	for _, n := range normalized {
		m, err := r.entityToModel(n)
		if err != nil {
			return err
		}
		models = append(models, m)
	}

	if err := r.db.WithContext(ctx).Omit("RawTransaction").CreateInBatches(models, batchInsertSize).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating normalized transaction batch", err, nil, map[string]any{
			"count": len(normalized),
		})
	}
	return nil
}

// GetByID retrieves a normalized transaction within an entity
func (r *NormalizedTransactionRepository) GetByID(ctx context.Context, entityID, id string) (*entity.NormalizedTransaction, error) {
	var m model.NormalizedTransaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND entity_id = ?", id, entityID).
		First(&m).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting normalized transaction", err, errs.ErrTransactionNotFound, map[string]any{
			"normalized_transaction_id": id,
			"entity_id":                 entityID,
		})
	}
	return r.modelToEntity(&m)
}

type historyRow struct {
	NormalizedTransactionID string
	CategoryID              *string
	TransactionDate         time.Time
	CreatedAt               time.Time
}

// FindRecentByDescription returns the entity's most recent transactions sharing a cleaned description
func (r *NormalizedTransactionRepository) FindRecentByDescription(
	ctx context.Context,
	entityID, descriptionClean, excludeID string,
	limit int,
) ([]entity.HistoryEntry, error) {
	var rows []historyRow
	err := r.db.WithContext(ctx).
		Table("normalized_transactions AS n").
		Select("n.id AS normalized_transaction_id, c.category_id, n.transaction_date, n.created_at").
		Joins("LEFT JOIN transaction_categorizations AS c ON c.normalized_transaction_id = n.id").
		Where("n.entity_id = ? AND n.description_clean = ? AND n.id <> ?", entityID, descriptionClean, excludeID).
		Order("n.transaction_date DESC, n.created_at DESC, n.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "finding history", err, nil, map[string]any{
			"entity_id": entityID,
		})
	}

	entries := make([]entity.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.HistoryEntry{
			NormalizedTransactionID: row.NormalizedTransactionID,
			CategoryID:              row.CategoryID,
			TransactionDate:         row.TransactionDate,
			CreatedAt:               row.CreatedAt,
		})
	}
	return entries, nil
}
