package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with what a request is for ("story-gen",
// "exercise-gen"). The logging decorator records the tag on each event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose tag back, or "unknown" when unset.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
