package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UploadedFileRepository implements persistence.UploadedFileRepository using GORM
type UploadedFileRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUploadedFileRepository creates a new UploadedFileRepository instance
func NewUploadedFileRepository(db *gorm.DB, logger coreport.Logger) *UploadedFileRepository {
	return &UploadedFileRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func uploadToModel(f *entity.UploadedFile) *model.UploadedFile {
	return &model.UploadedFile{
		ID:             f.ID,
		EntityID:       f.EntityID,
		ContentHash:    f.ContentHash,
		StorageLocator: f.StorageLocator,
		FileName:       f.FileName,
		SourceType:     string(f.SourceType),
		Status:         string(f.Status),
		RawCount:       f.RawCount,
		SkippedCount:   f.SkippedCount,
		CreatedAt:      f.CreatedAt,
		CommittedAt:    f.CommittedAt,
	}
}

func uploadToEntity(m *model.UploadedFile) *entity.UploadedFile {
	return &entity.UploadedFile{
		ID:             m.ID,
		EntityID:       m.EntityID,
		ContentHash:    m.ContentHash,
		StorageLocator: m.StorageLocator,
		FileName:       m.FileName,
		SourceType:     entity.SourceType(m.SourceType),
		Status:         entity.UploadStatus(m.Status),
		RawCount:       m.RawCount,
		SkippedCount:   m.SkippedCount,
		CreatedAt:      m.CreatedAt,
		CommittedAt:    m.CommittedAt,
	}
}

// Create saves a new staged upload
func (r *UploadedFileRepository) Create(ctx context.Context, file *entity.UploadedFile) error {
	r.logger.Debug("Creating upload", map[string]any{
		"upload_id":    file.ID,
		"entity_id":    file.EntityID,
		"content_hash": file.ContentHash,
	})

	err := r.db.WithContext(ctx).Create(uploadToModel(file)).Error
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Info("Upload with same content hash already exists", map[string]any{
				"entity_id":    file.EntityID,
				"content_hash": file.ContentHash,
			})
			return errs.ErrDuplicateUpload
		}
		return handleDatabaseError(r.logger, r.errorClassifier, "creating upload", err, nil, map[string]any{
			"upload_id": file.ID,
		})
	}
	return nil
}

// FindByHash returns the upload with this content hash, or nil when there is none
func (r *UploadedFileRepository) FindByHash(ctx context.Context, entityID, contentHash string) (*entity.UploadedFile, error) {
	var m model.UploadedFile
	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND content_hash = ?", entityID, contentHash).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "finding upload by hash", err, nil, map[string]any{
			"entity_id":    entityID,
			"content_hash": contentHash,
		})
	}
	return uploadToEntity(&m), nil
}

// GetByID retrieves an upload within an entity
func (r *UploadedFileRepository) GetByID(ctx context.Context, entityID, id string) (*entity.UploadedFile, error) {
	return r.get(r.db.WithContext(ctx), entityID, id)
}

// GetForUpdate retrieves an upload and locks its row until the transaction ends
func (r *UploadedFileRepository) GetForUpdate(ctx context.Context, entityID, id string) (*entity.UploadedFile, error) {
	r.logger.Debug("Locking upload", map[string]any{
		"upload_id": id,
	})
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), entityID, id)
}

// GetForShare retrieves an upload under a share lock until the transaction ends
func (r *UploadedFileRepository) GetForShare(ctx context.Context, entityID, id string) (*entity.UploadedFile, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), entityID, id)
}

func (r *UploadedFileRepository) get(query *gorm.DB, entityID, id string) (*entity.UploadedFile, error) {
	var m model.UploadedFile
	if err := query.Where("id = ? AND entity_id = ?", id, entityID).First(&m).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting upload", err, errs.ErrUploadNotFound, map[string]any{
			"upload_id": id,
			"entity_id": entityID,
		})
	}
	return uploadToEntity(&m), nil
}

// Update persists status, counters and commit time
func (r *UploadedFileRepository) Update(ctx context.Context, file *entity.UploadedFile) error {
	result := r.db.WithContext(ctx).
		Model(&model.UploadedFile{}).
		Where("id = ? AND entity_id = ?", file.ID, file.EntityID).
		Updates(map[string]any{
			"status":          string(file.Status),
			"raw_count":       file.RawCount,
			"skipped_count":   file.SkippedCount,
			"storage_locator": file.StorageLocator,
			"committed_at":    file.CommittedAt,
		})
	if result.Error != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "updating upload", result.Error, nil, map[string]any{
			"upload_id": file.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUploadNotFound
	}
	return nil
}
