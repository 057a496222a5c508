package telemetry

import "context"

// callSIDKey is the context key type used to store the provider call SID.
type callSIDKey struct{}

// WithCallSID returns a child context carrying the call SID so events
// emitted anywhere in a gather cycle correlate to one phone call.
// If ctx is nil, context.Background() is used.
func WithCallSID(ctx context.Context, sid string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callSIDKey{}, sid)
}

// CallSIDFromContext returns the call SID from ctx, if present.
// Returns "", false if the value is missing or not a non-empty string.
func CallSIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(callSIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
