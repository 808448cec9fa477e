package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceThresholdHandler attaches the caller location only to records at or
// above a minimum level. The wrapped handler must have AddSource disabled.
type sourceThresholdHandler struct {
	next     slog.Handler
	minLevel slog.Level
}

// NewSourceThresholdHandler wraps next so that records at minLevel and above
// carry a source attribute.
func NewSourceThresholdHandler(next slog.Handler, minLevel slog.Level) slog.Handler {
	return &sourceThresholdHandler{next: next, minLevel: minLevel}
}

func (h *sourceThresholdHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceThresholdHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		// skip runtime.Callers, this frame and the slog frame
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceThresholdHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceThresholdHandler{next: h.next.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceThresholdHandler) WithGroup(name string) slog.Handler {
	return &sourceThresholdHandler{next: h.next.WithGroup(name), minLevel: h.minLevel}
}
