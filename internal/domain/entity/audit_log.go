package entity

import "time"

// AuditAction names what an audit entry records
type AuditAction string

// Audit actions
const (
	AuditCategoryOverride AuditAction = "CATEGORY_OVERRIDE"
)

// DefaultOverrideReason is used when the user gives no reason for a correction
const DefaultOverrideReason = "Manual category selection"

// AuditLog is append-only
type AuditLog struct {
	ID        string
	EntityID  string
	Actor     string
	Action    AuditAction
	TargetID  string
	Reason    string
	Before    *CategorizationSnapshot
	After     *CategorizationSnapshot
	CreatedAt time.Time
}
