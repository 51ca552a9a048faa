package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside one serializable transaction, committing when fn returns nil
	// and rolling back otherwise. Serialization failures are retried with backoff.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetRawTransactionRepository returns a raw transaction repository bound to the current transaction
	GetRawTransactionRepository(ctx context.Context) RawTransactionRepository

	// GetNormalizedTransactionRepository returns a normalized transaction repository bound to the current transaction
	GetNormalizedTransactionRepository(ctx context.Context) NormalizedTransactionRepository

	// GetCategoryRepository returns a category repository bound to the current transaction
	GetCategoryRepository(ctx context.Context) CategoryRepository

	// GetRuleRepository returns a categorization rule repository bound to the current transaction
	GetRuleRepository(ctx context.Context) RuleRepository

	// GetOverrideRuleRepository returns an override rule repository bound to the current transaction
	GetOverrideRuleRepository(ctx context.Context) OverrideRuleRepository

	// GetCategorizationRepository returns a categorization repository bound to the current transaction
	GetCategorizationRepository(ctx context.Context) CategorizationRepository

	// GetUploadedFileRepository returns an uploaded file repository bound to the current transaction
	GetUploadedFileRepository(ctx context.Context) UploadedFileRepository

	// GetAuditLogRepository returns an audit log repository bound to the current transaction
	GetAuditLogRepository(ctx context.Context) AuditLogRepository
}
