package log

import (
	"context"
	"log/slog"
)

// NoOp returns a slog.Handler that discards every record.
//
// Decorators compare their handler against NoOp to skip wrapping a component with logs that would never be written.
func NoOp() slog.Handler {
	return noOpHandler{}
}

type noOpHandler struct{}

func (noOpHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noOpHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noOpHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h noOpHandler) WithGroup(string) slog.Handler           { return h }
