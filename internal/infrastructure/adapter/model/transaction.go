package model

import (
	"time"
)

// RawTransaction is the immutable ingested record
type RawTransaction struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	EntityID        string    `gorm:"size:64;not null;index"`
	SourceType      string    `gorm:"size:32;not null"`
	TransactionDate time.Time `gorm:"type:date;not null"`
	AmountInCents   int64     `gorm:"not null;check:chk_raw_amount_non_negative,amount_in_cents >= 0"`
	Direction       string    `gorm:"size:16;not null"`
	DescriptionRaw  string    `gorm:"type:text;not null"`
	ReferenceRaw    string    `gorm:"size:255"`
	Provenance      string    `gorm:"type:jsonb;not null;default:'{}'"`
	UploadedFileID  *string   `gorm:"type:uuid;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for RawTransaction
func (RawTransaction) TableName() string {
	return "raw_transactions"
}

// NormalizedTransaction is derived 1:1 from a raw transaction
type NormalizedTransaction struct {
	ID                   string    `gorm:"type:uuid;primaryKey"`
	EntityID             string    `gorm:"size:64;not null"`
	RawTransactionID     string    `gorm:"type:uuid;not null;uniqueIndex"`
	DescriptionClean     string    `gorm:"type:text;not null"`
	ReferenceExtracted   string    `gorm:"size:255"`
	NormalizationVersion string    `gorm:"size:16;not null"`
	Diff                 string    `gorm:"type:jsonb;not null"`
	Direction            string    `gorm:"size:16;not null"`
	AmountInCents        int64     `gorm:"not null"`
	TransactionDate      time.Time `gorm:"type:date;not null"`
	CreatedAt            time.Time `gorm:"not null"`

	RawTransaction RawTransaction `gorm:"foreignKey:RawTransactionID;references:ID"`
}

// TableName specifies the table name for NormalizedTransaction
func (NormalizedTransaction) TableName() string {
	return "normalized_transactions"
}
