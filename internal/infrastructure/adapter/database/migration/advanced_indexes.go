package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// history lookup: same entity, same cleaned description, newest first
		name: "idx_normalized_history",
		sql: `CREATE INDEX IF NOT EXISTS idx_normalized_history
			ON normalized_transactions (entity_id, description_clean, transaction_date DESC, created_at DESC)`,
	},
	{
		name: "idx_categorizations_review",
		sql: `CREATE INDEX IF NOT EXISTS idx_categorizations_review
			ON transaction_categorizations (entity_id, decided_at DESC)
			WHERE status = 'needs_review'`,
	},
	{
		name: "idx_categorizations_entity_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_categorizations_entity_status
			ON transaction_categorizations (entity_id, status, decided_at DESC)`,
	},
	{
		name: "idx_rules_entity_enabled",
		sql: `CREATE INDEX IF NOT EXISTS idx_rules_entity_enabled
			ON categorization_rules (entity_id, priority, created_at)
			WHERE enabled`,
	},
	{
		name: "idx_override_rules_entity_enabled",
		sql: `CREATE INDEX IF NOT EXISTS idx_override_rules_entity_enabled
			ON user_override_rules (entity_id, created_at DESC)
			WHERE enabled`,
	},
	{
		name: "idx_raw_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_raw_created_at_brin
			ON raw_transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_audit_logs_target",
		sql: `CREATE INDEX IF NOT EXISTS idx_audit_logs_target
			ON audit_logs (entity_id, target_id, created_at)`,
	},
}

// CreateAdvancedIndexes creates the query-specific indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, index := range advancedIndexes {
		if err := db.Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// categorizations are rewritten in place by overrides and reclassification
	if err := db.Exec(`ALTER TABLE transaction_categorizations SET (fillfactor = 85)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transaction_categorizations", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE normalized_transactions ALTER COLUMN description_clean SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for description_clean", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
	return nil
}
