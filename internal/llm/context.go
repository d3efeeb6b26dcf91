package llm

import "context"

type contextKey string

const purposeKey contextKey = "careerquest.llm_purpose"

// Request purposes recorded with every LLM event.
const (
	PurposeAdvisor  = "advisor"
	PurposeAptitude = "aptitude"
	PurposeEmbed    = "embed"
	PurposeProbe    = "probe"
)

// WithPurpose labels the calls made with ctx.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label attached by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
