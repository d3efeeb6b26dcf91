package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/careerquest/internal/llm"
)

// LLMEmbedder adapts an llm.Embedder (OpenAI, Gemini, OpenRouter) to
// Embedder.
type LLMEmbedder struct {
	inner llm.Embedder
}

// NewLLMEmbedder wraps e.
func NewLLMEmbedder(e llm.Embedder) *LLMEmbedder {
	return &LLMEmbedder{inner: e}
}

// Encode implements Embedder.
func (e *LLMEmbedder) Encode(ctx context.Context, texts ...string) ([][]float64, error) {
	vecs, err := e.inner.Embed(llm.WithPurpose(ctx, llm.PurposeEmbed), texts)
	if err != nil {
		return nil, Unavailable(NameEmbedder, err)
	}
	if len(vecs) != len(texts) {
		return nil, Unavailable(NameEmbedder, fmt.Errorf("got %d vectors for %d texts", len(vecs), len(texts)))
	}

	out := make([][]float64, len(vecs))
	for i, v := range vecs {
		f := make([]float64, len(v))
		for j, x := range v {
			f[j] = float64(x)
		}
		out[i] = f
	}
	return out, nil
}

// LLMClassifier asks a chat model to pick a career label for a feature
// vector. It is used when no trained model is configured.
type LLMClassifier struct {
	provider llm.Provider
	labels   Labels
	schema   *llm.Schema
}

// NewLLMClassifier builds a classifier restricted to labels.
func NewLLMClassifier(p llm.Provider, labels Labels) *LLMClassifier {
	enum := make([]any, len(labels))
	for i, l := range labels {
		enum[i] = l
	}
	return &LLMClassifier{
		provider: p,
		labels:   labels,
		schema: &llm.Schema{
			Name:        "career-label",
			Description: "The single best-fitting career for the score profile",
			Definition: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"career": map[string]any{"type": "string", "enum": enum},
				},
				"required":             []any{"career"},
				"additionalProperties": false,
			},
		},
	}
}

const classifierSystemPrompt = `You are a career aptitude model. Given a student's scores out of 100 per skill, pick the one career from the allowed list that best fits. Reply with JSON only.`

// Predict implements Classifier.
func (c *LLMClassifier) Predict(ctx context.Context, features []float64) (int, error) {
	if len(features) != len(FeatureColumns) {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(features), len(FeatureColumns))
	}

	var b strings.Builder
	for i, col := range FeatureColumns {
		fmt.Fprintf(&b, "%s: %.0f\n", strings.TrimSuffix(col, "_score"), features[i])
	}
	fmt.Fprintf(&b, "\nAllowed careers: %s", strings.Join(c.labels, ", "))

	resp, err := c.provider.Generate(llm.WithPurpose(ctx, llm.PurposeAptitude), llm.Request{
		System:      classifierSystemPrompt,
		Messages:    llm.UserMessage(b.String()),
		Schema:      c.schema,
		MaxTokens:   64,
		Temperature: 0.1,
	})
	if err != nil {
		return 0, Unavailable(NameClassifier, err)
	}

	var out struct {
		Career string `json:"career"`
	}
	if err := llm.DecodeResponse(c.schema, resp, &out); err != nil {
		return 0, Unavailable(NameClassifier, err)
	}
	idx, ok := c.labels.Index(out.Career)
	if !ok {
		return 0, Unavailable(NameClassifier, fmt.Errorf("unknown career %q", out.Career))
	}
	return idx, nil
}

// Decode implements Classifier.
func (c *LLMClassifier) Decode(index int) (string, error) {
	return c.labels.Name(index)
}
