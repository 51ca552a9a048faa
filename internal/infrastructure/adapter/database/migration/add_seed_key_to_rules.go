package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddSeedKeyToRules adds categorization_rules.seed_key and the partial unique index that lets
// default rules be inserted idempotently per entity
type AddSeedKeyToRules struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddSeedKeyToRules creates a new migration instance
func NewAddSeedKeyToRules(db *gorm.DB, logger coreport.Logger) *AddSeedKeyToRules {
	return &AddSeedKeyToRules{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddSeedKeyToRules) Run(ctx context.Context) error {
	m.logger.Info("Adding seed_key to categorization_rules", nil)

	db := m.db.WithContext(ctx)

	hasSeedKey, err := m.columnExists(db)
	if err != nil {
		return err
	}

	if !hasSeedKey {
		if err := db.Exec(`ALTER TABLE categorization_rules ADD COLUMN seed_key VARCHAR(64)`).Error; err != nil {
			m.logger.Error("Failed to add seed_key column", map[string]any{"error": err.Error()})
			return err
		}
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_rules_entity_seed_key
		ON categorization_rules (entity_id, seed_key)
		WHERE seed_key IS NOT NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create seed_key unique index", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added seed_key to categorization_rules", nil)
	return nil
}

func (m *AddSeedKeyToRules) columnExists(db *gorm.DB) (bool, error) {
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'categorization_rules' AND column_name = 'seed_key'
	`).Scan(&columns).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}

	return len(columns) > 0, nil
}
