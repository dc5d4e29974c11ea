package observability

import (
	"context"
	"testing"
)

// recordingLogger counts calls per level for context round-trip tests.
type recordingLogger struct {
	infos int
}

func (l *recordingLogger) Trace(_ context.Context, _ string, _ ...Attribute) {}
func (l *recordingLogger) Debug(_ context.Context, _ string, _ ...Attribute) {}
func (l *recordingLogger) Info(_ context.Context, _ string, _ ...Attribute)  { l.infos++ }
func (l *recordingLogger) Warn(_ context.Context, _ string, _ ...Attribute)  {}
func (l *recordingLogger) Error(_ context.Context, _ string, _ ...Attribute) {}

func TestObserverContextRoundTrip(t *testing.T) {
	logger := &recordingLogger{}
	ctx := ContextWithObserver(context.Background(), logger)

	observer := ObserverFromContext(ctx)
	if observer == nil {
		t.Fatal("expected the observer back from the context")
	}

	observer.Info(ctx, "hello")
	if logger.infos != 1 {
		t.Errorf("Info calls = %d, want 1", logger.infos)
	}
}

func TestObserverFromContext_Missing(t *testing.T) {
	if observer := ObserverFromContext(context.Background()); observer != nil {
		t.Errorf("expected nil observer for a bare context, got %T", observer)
	}
	if observer := ObserverFromContext(nil); observer != nil { //nolint:staticcheck
		t.Errorf("expected nil observer for a nil context, got %T", observer)
	}
}
