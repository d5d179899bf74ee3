package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/zalgonoise/cfg"
)

// New creates a slog.Logger from the input slog.Handler and cfg.Option(s).
//
// If the input handler is nil, a handler is created from the configuration: JSON (or text, with AsText) records are
// written to os.Stderr, or to the writer set with WithWriter, filtered by the level set with WithLevel.
func New(h slog.Handler, options ...cfg.Option[Config]) *slog.Logger {
	config := cfg.New(options...)

	if h == nil {
		h = newHandler(config)
	}

	if config.withTraceID {
		h = NewSpanContextHandler(h, config.withSpanID)
	}

	return slog.New(h)
}

func newHandler(config Config) slog.Handler {
	var w io.Writer = os.Stderr
	if config.writer != nil {
		w = config.writer
	}

	opts := &slog.HandlerOptions{
		AddSource: config.source,
		Level:     config.level,
	}

	switch config.format {
	case formatText:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}
