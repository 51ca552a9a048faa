package repository

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categoryToEntity(m *model.Category) entity.Category {
	return entity.Category{
		ID:         m.ID,
		Code:       m.Code,
		Name:       m.Name,
		LedgerType: entity.LedgerType(m.LedgerType),
	}
}

// List returns every category ordered by code
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var models []model.Category
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&models).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing categories", err, nil, nil)
	}

	categories := make([]entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, categoryToEntity(&models[i]))
	}
	return categories, nil
}

// GetByID retrieves a category
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var m model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting category", err, errs.ErrCategoryNotFound, map[string]any{
			"category_id": id,
		})
	}
	category := categoryToEntity(&m)
	return &category, nil
}

// GetByCode retrieves a category by its unique code
func (r *CategoryRepository) GetByCode(ctx context.Context, code string) (*entity.Category, error) {
	var m model.Category
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting category by code", err, errs.ErrCategoryNotFound, map[string]any{
			"category_code": code,
		})
	}
	category := categoryToEntity(&m)
	return &category, nil
}
