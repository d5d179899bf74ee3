package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDKey = "trace_id"
	spanIDKey  = "span_id"
)

// SpanContextHandler is a slog.Handler that adds the trace ID (and optionally the span ID) of the span in the
// record's context.Context as attributes, before passing the record to the wrapped handler.
type SpanContextHandler struct {
	handler    slog.Handler
	withSpanID bool
}

// NewSpanContextHandler wraps the input slog.Handler with a SpanContextHandler.
//
// If the input handler is nil, a no-op handler is wrapped instead.
func NewSpanContextHandler(h slog.Handler, withSpanID bool) slog.Handler {
	if h == nil {
		h = NoOp()
	}

	return SpanContextHandler{
		handler:    h,
		withSpanID: withSpanID,
	}
}

// Enabled implements the slog.Handler interface.
func (h SpanContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle implements the slog.Handler interface.
func (h SpanContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(slog.String(traceIDKey, sc.TraceID().String()))

		if h.withSpanID {
			record.AddAttrs(slog.String(spanIDKey, sc.SpanID().String()))
		}
	}

	return h.handler.Handle(ctx, record)
}

// WithAttrs implements the slog.Handler interface.
func (h SpanContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return SpanContextHandler{
		handler:    h.handler.WithAttrs(attrs),
		withSpanID: h.withSpanID,
	}
}

// WithGroup implements the slog.Handler interface.
func (h SpanContextHandler) WithGroup(name string) slog.Handler {
	return SpanContextHandler{
		handler:    h.handler.WithGroup(name),
		withSpanID: h.withSpanID,
	}
}
