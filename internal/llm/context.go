package llm

import "context"

// PurposeCoachReply tags coach replies in the request log.
const PurposeCoachReply = "coach-reply"

type purposeCtxKey struct{}

// WithPurpose tags ctx so the logging decorator can attribute the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
