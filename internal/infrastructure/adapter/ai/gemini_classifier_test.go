package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text     string
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

var sampleRequest = classifier.Request{
	EntityID:      "acme",
	Description:   "AWS EMEA",
	Direction:     entity.DirectionOutflow,
	AmountInCents: 125000,
	Reference:     "INV-42",
	AllowedCategories: []entity.Category{
		{ID: "c1", Code: "SOFTWARE_SUBSCRIPTIONS", Name: "Software & Subscriptions", LedgerType: entity.LedgerExpense},
	},
	History: []classifier.HistoryHint{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), CategoryCode: "SOFTWARE_SUBSCRIPTIONS"},
	},
}

func TestGeminiClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		err      error
		expected classifier.Result
	}{
		{
			name:     "matched",
			text:     `{"categoryCode":"software_subscriptions","signals":["AWS merchant","outflow"],"confidence":0.92,"explanation":"Cloud hosting"}`,
			expected: classifier.Matched{CategoryCode: "SOFTWARE_SUBSCRIPTIONS", Confidence: 0.92, Explanation: "Cloud hosting"},
		},
		{
			name:     "fenced answer",
			text:     "```json\n{\"categoryCode\":\"SOFTWARE_SUBSCRIPTIONS\",\"signals\":[\"a\",\"b\"],\"confidence\":0.6,\"explanation\":\"x\"}\n```",
			expected: classifier.Matched{CategoryCode: "SOFTWARE_SUBSCRIPTIONS", Confidence: 0.6, Explanation: "x"},
		},
		{
			name:     "single signal",
			text:     `{"categoryCode":"SOFTWARE_SUBSCRIPTIONS","signals":["AWS merchant"],"confidence":0.95,"explanation":"Cloud"}`,
			expected: classifier.NoMatch{Reason: "only 1 supporting signal(s) cited"},
		},
		{
			name:     "repeated signal counts once",
			text:     `{"categoryCode":"SOFTWARE_SUBSCRIPTIONS","signals":["AWS merchant"," aws merchant ",""],"confidence":0.95,"explanation":"Cloud"}`,
			expected: classifier.NoMatch{Reason: "only 1 supporting signal(s) cited"},
		},
		{
			name:     "no signals",
			text:     `{"categoryCode":"SOFTWARE_SUBSCRIPTIONS","confidence":0.95,"explanation":"Cloud"}`,
			expected: classifier.NoMatch{Reason: "only 0 supporting signal(s) cited"},
		},
		{
			name:     "unclassified",
			text:     `{"categoryCode":"UNCLASSIFIED","confidence":0.1,"explanation":"No idea"}`,
			expected: classifier.NoMatch{Reason: "No idea"},
		},
		{
			name:     "garbage",
			text:     "I think it is software",
			expected: classifier.NoMatch{Reason: "unparseable model response"},
		},
		{
			name:     "empty",
			text:     "  ",
			expected: classifier.NoMatch{Reason: "empty model response"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := &fakeGenerator{text: tt.text, err: tt.err}
			c := newGeminiClassifier(generator, "", logger.NewNoopLogger())

			result := c.Classify(context.Background(), sampleRequest)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, DefaultModelName, generator.model)
			require.NotNil(t, generator.config)
			assert.Equal(t, "application/json", generator.config.ResponseMIMEType)
		})
	}
}

func TestGeminiClassifier_TransportFailure(t *testing.T) {
	c := newGeminiClassifier(&fakeGenerator{err: errors.New("503 unavailable")}, "gemini-test", logger.NewNoopLogger())

	result := c.Classify(context.Background(), sampleRequest)

	unavailable, ok := result.(classifier.ServiceUnavailable)
	require.True(t, ok, "got %T", result)
	assert.ErrorIs(t, unavailable.Err, errs.ErrClassifierUnavailable)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(sampleRequest)

	assert.Contains(t, prompt, "description: AWS EMEA")
	assert.Contains(t, prompt, "direction: outflow")
	assert.Contains(t, prompt, "amount: 1250.00")
	assert.Contains(t, prompt, "reference: INV-42")
	assert.Contains(t, prompt, "- SOFTWARE_SUBSCRIPTIONS: Software & Subscriptions, expense")
	assert.Contains(t, prompt, "- 2025-02-01: SOFTWARE_SUBSCRIPTIONS")
}

func TestSystemPromptRequiresTwoSignals(t *testing.T) {
	assert.Contains(t, systemPrompt, `"signals"`)
	assert.Contains(t, systemPrompt, "at least two independent signals")
}

func TestCleanModelJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanModelJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanModelJSON(`Sure! {"a":1} hope that helps`))
	assert.Equal(t, "plain", cleanModelJSON("  plain "))
}

func TestNoopClassifier(t *testing.T) {
	result := NewNoopClassifier().Classify(context.Background(), sampleRequest)
	_, ok := result.(classifier.NoMatch)
	assert.True(t, ok)
}
