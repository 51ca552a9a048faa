package core

// IDGenerator issues identifiers for newly created records
type IDGenerator interface {
	NewID() string
}
