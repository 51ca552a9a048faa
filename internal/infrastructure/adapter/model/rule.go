package model

import (
	"time"
)

// CategorizationRule is an entity-scoped system rule. The matcher is stored as JSON.
type CategorizationRule struct {
	ID                  string    `gorm:"type:uuid;primaryKey"`
	EntityID            string    `gorm:"size:64;not null"`
	Priority            int       `gorm:"not null"`
	Enabled             bool      `gorm:"not null;default:true"`
	Matcher             string    `gorm:"type:jsonb;not null"`
	CategoryID          string    `gorm:"type:uuid;not null"`
	ExplanationTemplate string    `gorm:"type:text"`
	SeedKey             *string   `gorm:"size:64"`
	CreatedAt           time.Time `gorm:"not null"`

	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for CategorizationRule
func (CategorizationRule) TableName() string {
	return "categorization_rules"
}

// UserOverrideRule is learned from a manual correction
type UserOverrideRule struct {
	ID                            string    `gorm:"type:uuid;primaryKey"`
	EntityID                      string    `gorm:"size:64;not null"`
	Matcher                       string    `gorm:"type:jsonb;not null"`
	CategoryID                    string    `gorm:"type:uuid;not null"`
	Enabled                       bool      `gorm:"not null;default:true"`
	CreatedBy                     string    `gorm:"size:128;not null"`
	SourceNormalizedTransactionID string    `gorm:"type:uuid;not null"`
	CreatedAt                     time.Time `gorm:"not null"`

	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for UserOverrideRule
func (UserOverrideRule) TableName() string {
	return "user_override_rules"
}
