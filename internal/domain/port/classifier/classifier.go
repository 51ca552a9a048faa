// Package classifier defines the AI categorization collaborator.
package classifier

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// Unclassified is the category code a model returns when it cannot decide
const Unclassified = "UNCLASSIFIED"

// HistoryHint is a prior same-description transaction shown to the model
type HistoryHint struct {
	Date         time.Time
	CategoryCode string
}

// Request is what the model sees about one transaction
type Request struct {
	EntityID          string
	Description       string
	Direction         entity.Direction
	AmountInCents     int64
	Reference         string
	AllowedCategories []entity.Category
	History           []HistoryHint
}

// Result is one of Matched, NoMatch or ServiceUnavailable
type Result interface {
	isResult()
}

// Matched carries a category suggestion
type Matched struct {
	CategoryCode string
	Confidence   float64
	Explanation  string
}

// NoMatch means the model answered but did not pick a category
type NoMatch struct {
	Reason string
}

// ServiceUnavailable means the call failed and may be retried
type ServiceUnavailable struct {
	Err error
}

func (Matched) isResult()            {}
func (NoMatch) isResult()            {}
func (ServiceUnavailable) isResult() {}

// Classifier suggests a category for a transaction.
// Implementations make a single attempt; callers own timeouts and retries.
type Classifier interface {
	Classify(ctx context.Context, req Request) Result
}
