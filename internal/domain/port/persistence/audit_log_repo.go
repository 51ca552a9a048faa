package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// AuditLogRepository is append-only
type AuditLogRepository interface {
	// Append saves an audit entry
	Append(ctx context.Context, log *entity.AuditLog) error

	// ListByTarget returns an entity's audit entries for one target, oldest first
	ListByTarget(ctx context.Context, entityID, targetID string) ([]*entity.AuditLog, error)
}
