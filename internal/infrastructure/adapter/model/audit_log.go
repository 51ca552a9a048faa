package model

import (
	"time"
)

// AuditLog is append-only; snapshots are JSON
type AuditLog struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	EntityID  string    `gorm:"size:64;not null"`
	Actor     string    `gorm:"size:128;not null"`
	Action    string    `gorm:"size:64;not null"`
	TargetID  string    `gorm:"type:uuid;not null"`
	Reason    string    `gorm:"type:text"`
	Before    *string   `gorm:"type:jsonb"`
	After     *string   `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
