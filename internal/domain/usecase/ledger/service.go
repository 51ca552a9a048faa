// Package ledger deduplicates ingestion batches by content hash and gates their commit.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
)

var contentHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ContentHash returns the sha256 hex digest used for upload dedup
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Service implements the ingestion ledger
type Service struct {
	uow          persistence.UnitOfWork
	idGenerator  core.IDGenerator
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewService creates a ledger service
func NewService(
	uow persistence.UnitOfWork,
	idGenerator core.IDGenerator,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	return &Service{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUpload registers an empty batch
func (s *Service) CreateUpload(ctx context.Context, req usecase.CreateUploadRequest) (*usecase.CreateUploadResult, error) {
	return s.StageUpload(ctx, req, nil)
}

// StageUpload creates the upload and, when stage is given, persists its rows in the
// same transaction. Identical content resolves to the existing upload without error,
// including when a concurrent request wins the insert.
func (s *Service) StageUpload(
	ctx context.Context,
	req usecase.CreateUploadRequest,
	stage usecase.StageFunc,
) (*usecase.CreateUploadResult, error) {
	hash, err := validateUploadRequest(&req)
	if err != nil {
		return nil, err
	}

	existing, err := s.uow.GetUploadedFileRepository(ctx).FindByHash(ctx, req.EntityID, hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.existingResult(ctx, existing)
	}

	file := &entity.UploadedFile{
		ID:             s.idGenerator.NewID(),
		EntityID:       req.EntityID,
		ContentHash:    hash,
		StorageLocator: req.StorageLocator,
		FileName:       req.FileName,
		SourceType:     req.SourceType,
		Status:         entity.UploadStaged,
		CreatedAt:      s.timeProvider.Now(),
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetUploadedFileRepository(txCtx)
		if err := repo.Create(txCtx, file); err != nil {
			return err
		}
		if stage == nil {
			return nil
		}

		rawCount, skippedCount, err := stage(txCtx, file)
		if err != nil {
			return fmt.Errorf("stage rows: %w", err)
		}
		file.RawCount = rawCount
		file.SkippedCount = skippedCount
		return repo.Update(txCtx, file)
	})
	if errors.Is(err, errs.ErrDuplicateUpload) {
		winner, findErr := s.uow.GetUploadedFileRepository(ctx).FindByHash(ctx, req.EntityID, hash)
		if findErr != nil {
			return nil, findErr
		}
		if winner == nil {
			return nil, err
		}
		s.logger.Info("Concurrent identical upload detected, returning existing upload", map[string]any{
			"entity_id":        req.EntityID,
			"uploaded_file_id": winner.ID,
		})
		return s.existingResult(ctx, winner)
	}
	if err != nil {
		s.logger.Error("Failed to stage upload", map[string]any{
			"entity_id": req.EntityID,
			"file_name": req.FileName,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Upload staged", map[string]any{
		"entity_id":        req.EntityID,
		"uploaded_file_id": file.ID,
		"raw_count":        file.RawCount,
		"skipped_count":    file.SkippedCount,
	})

	return &usecase.CreateUploadResult{
		UploadedFileID: file.ID,
		WasExisting:    false,
		RawCount:       file.RawCount,
		SkippedCount:   file.SkippedCount,
	}, nil
}

// GetUpload returns the upload with its current raw row count
func (s *Service) GetUpload(ctx context.Context, entityID, uploadID string) (*entity.UploadedFile, error) {
	file, err := s.uow.GetUploadedFileRepository(ctx).GetByID(ctx, entityID, uploadID)
	if err != nil {
		return nil, err
	}
	count, err := s.uow.GetRawTransactionRepository(ctx).CountByUpload(ctx, file.ID)
	if err != nil {
		return nil, err
	}
	file.RawCount = int(count)
	return file, nil
}

// CommitUpload flips a staged upload to committed when none of its categorizations
// need review. A blocked commit is reported in the result, not as an error, and
// leaves the status unchanged. Committing twice returns the first commit.
func (s *Service) CommitUpload(ctx context.Context, entityID, uploadID string) (*usecase.CommitResult, error) {
	file, err := s.uow.GetUploadedFileRepository(ctx).GetByID(ctx, entityID, uploadID)
	if err != nil {
		return nil, err
	}
	if file.IsCommitted() {
		return committedResult(file), nil
	}

	// Cheap rejection before taking the row lock
	pending, err := s.uow.GetCategorizationRepository(ctx).CountNeedsReviewByUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return s.blockedResult(uploadID, pending), nil
	}

	var result *usecase.CommitResult
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetUploadedFileRepository(txCtx)
		locked, err := repo.GetForUpdate(txCtx, entityID, uploadID)
		if err != nil {
			return err
		}
		if locked.IsCommitted() {
			result = committedResult(locked)
			return nil
		}

		pending, err := s.uow.GetCategorizationRepository(txCtx).CountNeedsReviewByUpload(txCtx, uploadID)
		if err != nil {
			return err
		}
		if pending > 0 {
			result = s.blockedResult(uploadID, pending)
			return nil
		}

		locked.MarkCommitted(s.timeProvider.Now())
		if err := repo.Update(txCtx, locked); err != nil {
			return err
		}
		result = committedResult(locked)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to commit upload", map[string]any{
			"uploaded_file_id": uploadID,
			"error":            err.Error(),
		})
		return nil, err
	}

	if result.Status == usecase.CommitStatusCommitted {
		s.logger.Info("Upload committed", map[string]any{
			"entity_id":        entityID,
			"uploaded_file_id": uploadID,
		})
	}
	return result, nil
}

func (s *Service) existingResult(ctx context.Context, file *entity.UploadedFile) (*usecase.CreateUploadResult, error) {
	count, err := s.uow.GetRawTransactionRepository(ctx).CountByUpload(ctx, file.ID)
	if err != nil {
		return nil, err
	}
	return &usecase.CreateUploadResult{
		UploadedFileID: file.ID,
		WasExisting:    true,
		RawCount:       int(count),
		SkippedCount:   file.SkippedCount,
	}, nil
}

func (s *Service) blockedResult(uploadID string, pending int64) *usecase.CommitResult {
	s.logger.Info("Upload commit blocked", map[string]any{
		"uploaded_file_id":   uploadID,
		"needs_review_count": pending,
	})
	return &usecase.CommitResult{
		UploadedFileID:   uploadID,
		Status:           usecase.CommitStatusBlocked,
		NeedsReviewCount: pending,
	}
}

func committedResult(file *entity.UploadedFile) *usecase.CommitResult {
	return &usecase.CommitResult{
		UploadedFileID: file.ID,
		Status:         usecase.CommitStatusCommitted,
		CommittedAt:    file.CommittedAt,
	}
}

func validateUploadRequest(req *usecase.CreateUploadRequest) (string, error) {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return "", err
	}
	if !req.SourceType.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidSourceType, req.SourceType)
	}

	hash := strings.ToLower(strings.TrimSpace(req.ContentHash))
	if hash == "" {
		if len(req.Content) == 0 {
			return "", fmt.Errorf("%w: contentHash or content", errs.ErrMissingField)
		}
		hash = ContentHash(req.Content)
	}
	if !contentHashPattern.MatchString(hash) {
		return "", fmt.Errorf("%w: contentHash must be a sha256 hex digest", errs.ErrInvalidRequest)
	}
	return hash, nil
}
