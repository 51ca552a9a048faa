package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories is the global category catalog installed at startup
var DefaultCategories = []model.Category{
	{Code: "SALARY_INCOME", Name: "Salary", LedgerType: "income"},
	{Code: "INTEREST_INCOME", Name: "Interest", LedgerType: "income"},
	{Code: "REFUNDS", Name: "Refunds", LedgerType: "income"},
	{Code: "OTHER_INCOME", Name: "Other Income", LedgerType: "income"},
	{Code: "FOOD_DINING", Name: "Food & Dining", LedgerType: "expense"},
	{Code: "GROCERIES", Name: "Groceries", LedgerType: "expense"},
	{Code: "TRANSPORT", Name: "Transport", LedgerType: "expense"},
	{Code: "UTILITIES", Name: "Utilities", LedgerType: "expense"},
	{Code: "RENT", Name: "Rent", LedgerType: "expense"},
	{Code: "SHOPPING", Name: "Shopping", LedgerType: "expense"},
	{Code: "ENTERTAINMENT", Name: "Entertainment", LedgerType: "expense"},
	{Code: "HEALTHCARE", Name: "Healthcare", LedgerType: "expense"},
	{Code: "TRAVEL", Name: "Travel", LedgerType: "expense"},
	{Code: "INSURANCE", Name: "Insurance", LedgerType: "expense"},
	{Code: "TAXES", Name: "Taxes", LedgerType: "expense"},
	{Code: "BANK_FEES", Name: "Bank Fees", LedgerType: "expense"},
	{Code: "SOFTWARE_SUBSCRIPTIONS", Name: "Software & Subscriptions", LedgerType: "expense"},
	{Code: "OFFICE_SUPPLIES", Name: "Office Supplies", LedgerType: "expense"},
	{Code: "INTERNAL_TRANSFER", Name: "Internal Transfer", LedgerType: "asset"},
	{Code: "INVESTMENTS", Name: "Investments", LedgerType: "asset"},
	{Code: "LOAN_REPAYMENT", Name: "Loan Repayment", LedgerType: "liability"},
	{Code: "CREDIT_CARD_PAYMENT", Name: "Credit Card Payment", LedgerType: "liability"},
}

// SeedCategories inserts the default catalog; existing codes are left untouched
type SeedCategories struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSeedCategories creates a new migration instance
func NewSeedCategories(db *gorm.DB, logger coreport.Logger) *SeedCategories {
	return &SeedCategories{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *SeedCategories) Run(ctx context.Context) error {
	m.logger.Info("Seeding category catalog", map[string]any{
		"categories": len(DefaultCategories),
	})

	rows := make([]model.Category, len(DefaultCategories))
	for i, category := range DefaultCategories {
		rows[i] = category
		rows[i].ID = uuid.NewString()
	}

	result := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&rows)
	if result.Error != nil {
		m.logger.Error("Failed to seed categories", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Category catalog seeded", map[string]any{
		"inserted": result.RowsAffected,
	})
	return nil
}
