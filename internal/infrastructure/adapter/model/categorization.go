package model

import (
	"time"
)

// TransactionCategorization is upserted on normalized_transaction_id
type TransactionCategorization struct {
	ID                      string    `gorm:"type:uuid;primaryKey"`
	EntityID                string    `gorm:"size:64;not null"`
	NormalizedTransactionID string    `gorm:"type:uuid;not null;uniqueIndex"`
	CategoryID              *string   `gorm:"type:uuid"`
	Method                  string    `gorm:"size:16;not null"`
	Confidence              float64   `gorm:"not null;check:chk_confidence_range,confidence >= 0 AND confidence <= 1"`
	Explanation             string    `gorm:"type:text"`
	Status                  string    `gorm:"size:16;not null"`
	RuleID                  *string   `gorm:"type:uuid"`
	DecidedAt               time.Time `gorm:"not null"`

	NormalizedTransaction NormalizedTransaction `gorm:"foreignKey:NormalizedTransactionID;references:ID"`
}

// TableName specifies the table name for TransactionCategorization
func (TransactionCategorization) TableName() string {
	return "transaction_categorizations"
}

// ReviewRow is the joined projection read by the review queue
type ReviewRow struct {
	TransactionCategorization
	RawTransactionID   string
	UploadedFileID     *string
	DescriptionClean   string
	ReferenceExtracted string
	Direction          string
	AmountInCents      int64
	TransactionDate    time.Time
	CategoryCode       *string
	CategoryName       *string
}
