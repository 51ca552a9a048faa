// Package id issues record identifiers.
package id

import (
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
