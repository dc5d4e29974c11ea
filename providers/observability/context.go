package observability

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var observerContextKey = contextKey{}

// ObserverFromContext extracts a Logger from the context.
// Returns nil if no observer is present; callers must nil-check.
func ObserverFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nil
	}
	observer, _ := ctx.Value(observerContextKey).(Logger)
	return observer
}

// ContextWithObserver returns a new context with the given observer attached.
func ContextWithObserver(ctx context.Context, observer Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, observerContextKey, observer)
}
