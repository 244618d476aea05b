// Package logging wraps log/slog with trace/span correlation, so every
// log line emitted during an interpreter pass or event detection run
// can be tied back to the span that produced it (SPEC_FULL.md §4.9).
// Adapted from the teacher's correlated logger.
package logging

import (
	"context"
	"log/slog"

	"github.com/chandraflight/kadistate/tracing"
)

// Logger is a minimal wrapper allowing correlation injection.
type Logger interface {
	InfoCtx(ctx context.Context, msg string, attrs ...any)
	WarnCtx(ctx context.Context, msg string, attrs ...any)
	ErrorCtx(ctx context.Context, msg string, attrs ...any)
}

type correlatedLogger struct{ base *slog.Logger }

// New returns a correlated Logger wrapping base (slog.Default() if nil).
func New(base *slog.Logger) Logger {
	if base == nil {
		base = slog.Default()
	}
	return &correlatedLogger{base: base}
}

func (l *correlatedLogger) correlate(ctx context.Context, attrs []any) []any {
	traceID, spanID := tracing.ExtractIDs(ctx)
	if traceID != "" || spanID != "" {
		attrs = append(attrs, slog.String("trace_id", traceID), slog.String("span_id", spanID))
	}
	return attrs
}

func (l *correlatedLogger) InfoCtx(ctx context.Context, msg string, attrs ...any) {
	l.base.InfoContext(ctx, msg, l.correlate(ctx, attrs)...)
}

func (l *correlatedLogger) WarnCtx(ctx context.Context, msg string, attrs ...any) {
	l.base.WarnContext(ctx, msg, l.correlate(ctx, attrs)...)
}

func (l *correlatedLogger) ErrorCtx(ctx context.Context, msg string, attrs ...any) {
	l.base.ErrorContext(ctx, msg, l.correlate(ctx, attrs)...)
}
