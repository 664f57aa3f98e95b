package llm

import "context"

// Call purposes. Every generation is tagged with one so the event log can
// break usage down by feature.
const (
	PurposeSentence  = "sentence-gen"
	PurposePassage   = "passage-gen"
	PurposeTranslate = "translate"
	PurposeConverse  = "conversation"

	// PurposeUnknown is reported for untagged contexts.
	PurposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx with a call purpose. An empty purpose leaves ctx
// untouched.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose ctx was tagged with, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return PurposeUnknown
}
