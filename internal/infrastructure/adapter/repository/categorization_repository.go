package repository

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategorizationRepository implements persistence.CategorizationRepository using GORM
type CategorizationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategorizationRepository creates a new CategorizationRepository instance
func NewCategorizationRepository(db *gorm.DB, logger coreport.Logger) *CategorizationRepository {
	return &CategorizationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categorizationToModel(c *entity.TransactionCategorization) *model.TransactionCategorization {
	return &model.TransactionCategorization{
		ID:                      c.ID,
		EntityID:                c.EntityID,
		NormalizedTransactionID: c.NormalizedTransactionID,
		CategoryID:              c.CategoryID,
		Method:                  string(c.Method),
		Confidence:              c.Confidence,
		Explanation:             c.Explanation,
		Status:                  string(c.Status),
		RuleID:                  c.RuleID,
		DecidedAt:               c.DecidedAt,
	}
}

func categorizationToEntity(m *model.TransactionCategorization) entity.TransactionCategorization {
	return entity.TransactionCategorization{
		ID:                      m.ID,
		EntityID:                m.EntityID,
		NormalizedTransactionID: m.NormalizedTransactionID,
		CategoryID:              m.CategoryID,
		Method:                  entity.Method(m.Method),
		Confidence:              m.Confidence,
		Explanation:             m.Explanation,
		Status:                  entity.CategorizationStatus(m.Status),
		RuleID:                  m.RuleID,
		DecidedAt:               m.DecidedAt,
	}
}

// Upsert inserts or replaces the categorization of its normalized transaction.
// The existing row keeps its id; c.ID is updated to the stored id.
func (r *CategorizationRepository) Upsert(ctx context.Context, c *entity.TransactionCategorization) error {
	r.logger.Debug("Upserting categorization", map[string]any{
		"normalized_transaction_id": c.NormalizedTransactionID,
		"method":                    c.Method,
		"status":                    c.Status,
	})

	m := categorizationToModel(c)
	db := r.db.WithContext(ctx)
	err := db.Omit("NormalizedTransaction").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "normalized_transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"category_id", "method", "confidence", "explanation", "status", "rule_id", "decided_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "upserting categorization", err, nil, map[string]any{
			"normalized_transaction_id": c.NormalizedTransactionID,
		})
	}

	var storedID string
	err = db.Model(&model.TransactionCategorization{}).
		Where("normalized_transaction_id = ?", c.NormalizedTransactionID).
		Pluck("id", &storedID).Error
	if err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "reading categorization id", err, nil, map[string]any{
			"normalized_transaction_id": c.NormalizedTransactionID,
		})
	}
	if storedID != "" {
		c.ID = storedID
	}
	return nil
}

// GetByNormalizedID retrieves the categorization of a normalized transaction
func (r *CategorizationRepository) GetByNormalizedID(ctx context.Context, entityID, normalizedTransactionID string) (*entity.TransactionCategorization, error) {
	var m model.TransactionCategorization
	err := r.db.WithContext(ctx).
		Where("normalized_transaction_id = ? AND entity_id = ?", normalizedTransactionID, entityID).
		First(&m).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting categorization", err, errs.ErrNotFound, map[string]any{
			"normalized_transaction_id": normalizedTransactionID,
			"entity_id":                 entityID,
		})
	}
	c := categorizationToEntity(&m)
	return &c, nil
}

// CountNeedsReviewByUpload counts an upload's rows that are needs_review or have no categorization yet
func (r *CategorizationRepository) CountNeedsReviewByUpload(ctx context.Context, uploadedFileID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("raw_transactions AS r").
		Joins("LEFT JOIN normalized_transactions AS n ON n.raw_transaction_id = r.id").
		Joins("LEFT JOIN transaction_categorizations AS c ON c.normalized_transaction_id = n.id").
		Where("r.uploaded_file_id = ?", uploadedFileID).
		Where("c.id IS NULL OR c.status = ?", string(entity.StatusNeedsReview)).
		Count(&count).Error
	if err != nil {
		return 0, handleDatabaseError(r.logger, r.errorClassifier, "counting review items", err, nil, map[string]any{
			"uploaded_file_id": uploadedFileID,
		})
	}
	return count, nil
}

// ListReview returns categorizations joined with their transaction context, newest first
func (r *CategorizationRepository) ListReview(ctx context.Context, filter persistence.ReviewFilter) ([]entity.ReviewItem, error) {
	query := r.db.WithContext(ctx).
		Table("transaction_categorizations AS c").
		Select(`c.*,
			n.raw_transaction_id, r.uploaded_file_id,
			n.description_clean, n.reference_extracted, n.direction, n.amount_in_cents, n.transaction_date,
			cat.code AS category_code, cat.name AS category_name`).
		Joins("JOIN normalized_transactions AS n ON n.id = c.normalized_transaction_id").
		Joins("JOIN raw_transactions AS r ON r.id = n.raw_transaction_id").
		Joins("LEFT JOIN categories AS cat ON cat.id = c.category_id").
		Where("c.entity_id = ? AND c.status = ?", filter.EntityID, string(filter.Status))
	if filter.UploadedFileID != nil {
		query = query.Where("r.uploaded_file_id = ?", *filter.UploadedFileID)
	}

	var rows []model.ReviewRow
	err := query.
		Order("c.decided_at DESC, c.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing review queue", err, nil, map[string]any{
			"entity_id": filter.EntityID,
			"status":    filter.Status,
		})
	}

	items := make([]entity.ReviewItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		items = append(items, entity.ReviewItem{
			Categorization:     categorizationToEntity(&row.TransactionCategorization),
			RawTransactionID:   row.RawTransactionID,
			UploadedFileID:     row.UploadedFileID,
			DescriptionClean:   row.DescriptionClean,
			ReferenceExtracted: row.ReferenceExtracted,
			Direction:          entity.Direction(row.Direction),
			AmountInCents:      row.AmountInCents,
			TransactionDate:    row.TransactionDate,
			CategoryCode:       derefString(row.CategoryCode),
			CategoryName:       derefString(row.CategoryName),
		})
	}
	return items, nil
}
