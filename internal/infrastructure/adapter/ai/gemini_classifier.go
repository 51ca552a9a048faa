// Package ai adapts hosted language models to the classifier port.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured
const DefaultModelName = "gemini-2.5-flash"

// minSignals is the evidence a suggestion must cite to be used
const minSignals = 2

const systemPrompt = "You categorize business bank transactions into a fixed chart of categories.\n" +
	"Answer with STRICT JSON only, a single object with these fields:\n" +
	"- \"categoryCode\": one of the allowed codes, or \"UNCLASSIFIED\" if none fits\n" +
	"- \"signals\": the independent pieces of evidence supporting the category, such as a merchant name,\n" +
	"  a keyword in the description, the direction, the amount, the reference or the history\n" +
	"- \"confidence\": number between 0 and 1\n" +
	"- \"explanation\": one short sentence\n" +
	"Be conservative: answer \"UNCLASSIFIED\" unless you can cite at least two independent signals.\n" +
	"Do NOT wrap the response in code fences."

// contentGenerator is the subset of *genai.Models used here
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier asks a Gemini model for a category suggestion
type GeminiClassifier struct {
	models contentGenerator
	model  string
	logger coreport.Logger
}

// GeminiConfig holds the client settings
type GeminiConfig struct {
	APIKey string
	Model  string
}

// NewGeminiClassifier creates a classifier backed by the Gemini API
func NewGeminiClassifier(ctx context.Context, config GeminiConfig, logger coreport.Logger) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGeminiClassifier(client.Models, config.Model, logger), nil
}

func newGeminiClassifier(models contentGenerator, model string, logger coreport.Logger) *GeminiClassifier {
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiClassifier{
		models: models,
		model:  model,
		logger: logger,
	}
}

type modelAnswer struct {
	CategoryCode string   `json:"categoryCode"`
	Signals      []string `json:"signals"`
	Confidence   float64  `json:"confidence"`
	Explanation  string   `json:"explanation"`
}

// distinctSignals counts the non-blank signals, ignoring case and repeats
func (a modelAnswer) distinctSignals() int {
	seen := make(map[string]struct{}, len(a.Signals))
	for _, signal := range a.Signals {
		key := strings.ToLower(strings.TrimSpace(signal))
		if key != "" {
			seen[key] = struct{}{}
		}
	}
	return len(seen)
}

// Classify makes one model call. Transport failures are ServiceUnavailable;
// an answer that cannot be used is NoMatch.
func (c *GeminiClassifier) Classify(ctx context.Context, req classifier.Request) classifier.Result {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildPrompt(req)}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		c.logger.Warn("Model call failed", map[string]any{
			"model": c.model,
			"error": err.Error(),
		})
		return classifier.ServiceUnavailable{Err: fmt.Errorf("%w: %s", errs.ErrClassifierUnavailable, err.Error())}
	}

	rawText := resp.Text()
	if strings.TrimSpace(rawText) == "" {
		return classifier.NoMatch{Reason: "empty model response"}
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &answer); err != nil {
		c.logger.Warn("Model returned unparseable answer", map[string]any{
			"model":    c.model,
			"error":    err.Error(),
			"response": rawText,
		})
		return classifier.NoMatch{Reason: "unparseable model response"}
	}

	code := entity.NormalizeCategoryCode(answer.CategoryCode)
	if code == "" || code == classifier.Unclassified {
		return classifier.NoMatch{Reason: answer.Explanation}
	}
	if n := answer.distinctSignals(); n < minSignals {
		c.logger.Debug("Model suggestion lacks supporting signals", map[string]any{
			"model":         c.model,
			"category_code": code,
			"signals":       n,
		})
		return classifier.NoMatch{Reason: fmt.Sprintf("only %d supporting signal(s) cited", n)}
	}

	return classifier.Matched{
		CategoryCode: code,
		Confidence:   answer.Confidence,
		Explanation:  answer.Explanation,
	}
}

func buildPrompt(req classifier.Request) string {
	var b strings.Builder

	b.WriteString("Transaction:\n")
	fmt.Fprintf(&b, "- description: %s\n", req.Description)
	fmt.Fprintf(&b, "- direction: %s\n", req.Direction)
	fmt.Fprintf(&b, "- amount: %s\n", entity.AmountInCentsToString(req.AmountInCents))
	if req.Reference != "" {
		fmt.Fprintf(&b, "- reference: %s\n", req.Reference)
	}

	b.WriteString("\nAllowed categories (code: name, ledger type):\n")
	for _, category := range req.AllowedCategories {
		fmt.Fprintf(&b, "- %s: %s, %s\n", category.Code, category.Name, category.LedgerType)
	}

	if len(req.History) > 0 {
		b.WriteString("\nPrevious transactions with the same description:\n")
		for _, hint := range req.History {
			fmt.Fprintf(&b, "- %s: %s\n", hint.Date.Format("2006-01-02"), hint.CategoryCode)
		}
	}

	return b.String()
}

// cleanModelJSON strips code fences and surrounding text from a JSON object answer
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
