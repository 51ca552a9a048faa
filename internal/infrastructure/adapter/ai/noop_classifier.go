package ai

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
)

// NoopClassifier never suggests a category; used when AI classification is disabled
type NoopClassifier struct{}

// NewNoopClassifier creates a NoopClassifier
func NewNoopClassifier() classifier.Classifier {
	return NoopClassifier{}
}

// Classify always returns NoMatch
func (NoopClassifier) Classify(context.Context, classifier.Request) classifier.Result {
	return classifier.NoMatch{Reason: "AI classification disabled"}
}
