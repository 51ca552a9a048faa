package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// UploadedFileRepository stores ingestion batches
type UploadedFileRepository interface {
	// Create saves a new staged upload
	//
	// Possible errors:
	// - ErrDuplicateUpload: If (entityId, contentHash) already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, file *entity.UploadedFile) error

	// FindByHash returns the upload with this content hash, or nil when there is none
	FindByHash(ctx context.Context, entityID, contentHash string) (*entity.UploadedFile, error)

	// GetByID retrieves an upload within an entity
	//
	// Possible errors:
	// - ErrUploadNotFound: If the upload doesn't exist in the entity
	GetByID(ctx context.Context, entityID, id string) (*entity.UploadedFile, error)

	// GetForUpdate retrieves an upload and locks its row until the transaction ends
	//
	// Possible errors:
	// - ErrUploadNotFound: If the upload doesn't exist in the entity
	GetForUpdate(ctx context.Context, entityID, id string) (*entity.UploadedFile, error)

	// GetForShare retrieves an upload and holds a share lock on its row until the
	// transaction ends, so a concurrent commit waits for the caller to finish
	//
	// Possible errors:
	// - ErrUploadNotFound: If the upload doesn't exist in the entity
	GetForShare(ctx context.Context, entityID, id string) (*entity.UploadedFile, error)

	// Update persists status, counters and commit time
	Update(ctx context.Context, file *entity.UploadedFile) error
}
