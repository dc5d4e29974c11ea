// Package slogobs implements the observability Logger on top of the standard
// library's log/slog. It is the default observer used by examples and tests;
// applications with their own logging stack can implement the Logger
// interface directly instead.
package slogobs

import (
	"context"
	"log/slog"

	"github.com/leofalp/botmux/providers/observability"
)

// LevelTrace is the slog level used for trace output. slog has no built-in
// trace level, so one is defined below debug.
const LevelTrace = slog.LevelDebug - 4

// Observer implements observability.Logger using slog.
type Observer struct {
	logger *slog.Logger
}

// Ensure Observer implements observability.Logger.
var _ observability.Logger = (*Observer)(nil)

// New creates a new slog-based observer. A nil logger falls back to
// slog.Default().
func New(logger *slog.Logger) *Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{logger: logger}
}

func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, LevelTrace, msg, attrs)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs []observability.Attribute) {
	if !o.logger.Enabled(ctx, level) {
		return
	}

	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}
