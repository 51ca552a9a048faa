package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidDocument     = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidDirection    = 4003
	CodeInvalidDate         = 4004
	CodeMissingColumn       = 4005
	CodeInvalidMatcher      = 4006
	CodeInvalidRequest      = 4007
	CodeConstraintViolation = 4008
	CodeInvalidEntityID     = 4009
	CodeNotFound            = 4040
	CodeUploadNotFound      = 4041
	CodeTransactionNotFound = 4042
	CodeCategoryNotFound    = 4043
	CodeRuleNotFound        = 4044
	CodeDuplicateUpload     = 4090
	CodeUploadCommitted     = 4091
	CodeCommitBlocked       = 4092
	CodeForbidden           = 4030
	CodeUnauthorized        = 4010

	// 5xxx - Server errors
	CodeInternalServer        = 5000
	CodeDatabaseConnection    = 5001
	CodeStorageUnavailable    = 5002
	CodeClassifierUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidDocument is returned when an uploaded document cannot be parsed as a whole
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnterminatedQuote is returned when a quoted CSV field never closes
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrInvalidAmount is returned when an amount is empty, malformed or not finite
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidDirection is returned when a direction token is not a known synonym
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidDate is returned when a transaction date cannot be parsed
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrMissingColumn is returned when a required CSV column is absent
	ErrMissingColumn = errors.New("missing required column")

	// ErrMissingField is returned when a candidate lacks a required field
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidMatcher is returned when a rule's matcher spec is unusable
	ErrInvalidMatcher = errors.New("invalid matcher")

	// ErrInvalidEntityID is returned when the entity id is empty or malformed
	ErrInvalidEntityID = errors.New("invalid entity ID")

	// ErrInvalidSourceType is returned when the source type is not one of the allowed values
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrInvalidStatus is returned for an unknown categorization status filter
	ErrInvalidStatus = errors.New("invalid categorization status")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateUpload is returned when an upload with the same content hash already exists
	ErrDuplicateUpload = errors.New("upload with this content hash already exists")

	// ErrUploadCommitted is returned when rows are added to an upload that was already committed
	ErrUploadCommitted = errors.New("upload is already committed")

	// ErrCommitBlocked is returned when an upload still has categorizations needing review
	ErrCommitBlocked = errors.New("upload has categorizations needing review")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUploadNotFound is returned when the requested upload doesn't exist
	ErrUploadNotFound = errors.New("upload not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrRuleNotFound is returned when the requested rule doesn't exist
	ErrRuleNotFound = errors.New("rule not found")

	// ErrUnauthorized is returned when a bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a caller acts on an entity outside its scope
	ErrForbidden = errors.New("forbidden")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrSerializationFailure is returned when a serializable transaction must be retried
	ErrSerializationFailure = errors.New("could not serialize access")

	// ErrStorageUnavailable is returned when raw content cannot be written to blob storage
	ErrStorageUnavailable = errors.New("blob storage unavailable")

	// ErrClassifierUnavailable is returned when the AI classifier cannot be reached
	ErrClassifierUnavailable = errors.New("classification service unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDocument), errors.Is(err, ErrUnterminatedQuote):
		return CodeInvalidDocument
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidDirection):
		return CodeInvalidDirection
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrMissingColumn):
		return CodeMissingColumn
	case errors.Is(err, ErrInvalidMatcher):
		return CodeInvalidMatcher
	case errors.Is(err, ErrInvalidEntityID):
		return CodeInvalidEntityID
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidSourceType),
		errors.Is(err, ErrInvalidStatus):
		return CodeInvalidRequest
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUploadNotFound):
		return CodeUploadNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrRuleNotFound):
		return CodeRuleNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUpload):
		return CodeDuplicateUpload
	case errors.Is(err, ErrUploadCommitted):
		return CodeUploadCommitted
	case errors.Is(err, ErrCommitBlocked):
		return CodeCommitBlocked
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrDatabaseConnection), errors.Is(err, ErrSerializationFailure):
		return CodeDatabaseConnection
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	case errors.Is(err, ErrClassifierUnavailable):
		return CodeClassifierUnavailable
	default:
		return CodeInternalServer
	}
}

// ParseError describes a document-level parse failure at a specific line
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d, column %q (value %q): %v", e.Line, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "parse_error",
		"line":       e.Line,
		"column":     e.Column,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewParseError creates a parse error for the given line and column
func NewParseError(line int, column, value string, err error) error {
	return &ParseError{
		Line:   line,
		Column: column,
		Value:  value,
		Err:    err,
	}
}

// MatcherError reports why a rule's matcher spec was rejected
type MatcherError struct {
	RuleID string
	Field  string
	Reason string
}

// Error implements the error interface
func (e *MatcherError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("invalid matcher for rule %s: %s: %s", e.RuleID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid matcher: %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrInvalidMatcher
func (e *MatcherError) Is(target error) bool {
	return target == ErrInvalidMatcher
}

// LogFields returns a map of fields for structured logging
func (e *MatcherError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "matcher_error",
		"rule_id":    e.RuleID,
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeInvalidMatcher,
	}
}

// NewMatcherError creates a new matcher validation error
func NewMatcherError(ruleID, field, reason string) error {
	return &MatcherError{
		RuleID: ruleID,
		Field:  field,
		Reason: reason,
	}
}

// CommitBlockedError carries the number of categorizations that still need review
type CommitBlockedError struct {
	UploadID         string
	NeedsReviewCount int64
}

// Error implements the error interface
func (e *CommitBlockedError) Error() string {
	return fmt.Sprintf("upload %s cannot be committed: %d categorizations need review",
		e.UploadID, e.NeedsReviewCount)
}

// Is checks if the target error is an ErrCommitBlocked
func (e *CommitBlockedError) Is(target error) bool {
	return target == ErrCommitBlocked
}

// LogFields returns a map of fields for structured logging
func (e *CommitBlockedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":         "commit_blocked",
		"uploaded_file_id":   e.UploadID,
		"needs_review_count": e.NeedsReviewCount,
		"error_code":         CodeCommitBlocked,
	}
}

// NewCommitBlockedError creates a new commit blocked error
func NewCommitBlockedError(uploadID string, count int64) error {
	return &CommitBlockedError{
		UploadID:         uploadID,
		NeedsReviewCount: count,
	}
}

// IsDuplicateUploadError checks if the error signals an already existing upload
func IsDuplicateUploadError(err error) bool {
	return errors.Is(err, ErrDuplicateUpload)
}

// IsCommitBlockedError checks if the error is a commit gate rejection
func IsCommitBlockedError(err error) bool {
	return errors.Is(err, ErrCommitBlocked)
}

// IsValidationError checks if the error was caused by bad caller input
func IsValidationError(err error) bool {
	code := ErrorCode(err)
	return code >= CodeInvalidDocument && code <= CodeInvalidEntityID
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUploadNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrRuleNotFound)
}

// IsTransientError checks if the error may succeed when retried
func IsTransientError(err error) bool {
	return errors.Is(err, ErrSerializationFailure) || errors.Is(err, ErrDatabaseConnection)
}
