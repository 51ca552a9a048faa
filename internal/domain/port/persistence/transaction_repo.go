package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// RawTransactionRepository stores immutable raw records
type RawTransactionRepository interface {
	// Create saves one raw transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If the record references a missing upload
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, raw *entity.RawTransaction) error

	// CreateBatch saves raw transactions in one statement
	CreateBatch(ctx context.Context, raws []*entity.RawTransaction) error

	// GetByID retrieves a raw transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record exists in the entity
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, entityID, id string) (*entity.RawTransaction, error)

	// CountByUpload counts raw rows attached to an upload
	CountByUpload(ctx context.Context, uploadedFileID string) (int64, error)
}

// NormalizedTransactionRepository stores normalizer output
type NormalizedTransactionRepository interface {
	// Create saves one normalized transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If the raw record already has a normalized record
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, normalized *entity.NormalizedTransaction) error

	// CreateBatch saves normalized transactions in one statement
	CreateBatch(ctx context.Context, normalized []*entity.NormalizedTransaction) error

	// GetByID retrieves a normalized transaction within an entity
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record exists in the entity
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, entityID, id string) (*entity.NormalizedTransaction, error)

	// FindRecentByDescription returns up to limit of the entity's most recent transactions with
	// exactly this cleaned description, newest first, with their current category if any.
	// The transaction excludeID is never part of the result.
	FindRecentByDescription(
		ctx context.Context,
		entityID, descriptionClean, excludeID string,
		limit int,
	) ([]entity.HistoryEntry, error)
}
