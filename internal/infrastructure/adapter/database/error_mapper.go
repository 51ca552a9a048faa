package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeUpload         EntityType = "uploaded_file"
	EntityTypeTransaction    EntityType = "transaction"
	EntityTypeCategory       EntityType = "category"
	EntityTypeRule           EntityType = "rule"
	EntityTypeCategorization EntityType = "categorization"
)

// ErrorMapper maps driver errors that escape the repositories to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error.
// Errors that already carry a domain sentinel are returned unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	switch m.classifier.Classify(err) {
	case repository.SerializationError:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrSerializationFailure, operation, err.Error())
	case repository.DuplicateKeyError, repository.ConstraintError:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrConstraintViolation, operation, err.Error())
	case repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUpload:
			return domainErr.ErrUploadNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		case EntityTypeCategory:
			return domainErr.ErrCategoryNotFound
		case EntityTypeRule:
			return domainErr.ErrRuleNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// IsRetryable reports whether a whole unit of work may be re-run after err
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domainErr.ErrSerializationFailure) {
		return true
	}
	return m.classifier.IsSerializationError(err)
}

func isDomainError(err error) bool {
	return domainErr.ErrorCode(err) != domainErr.CodeInternalServer || errors.Is(err, domainErr.ErrInternalServer)
}
