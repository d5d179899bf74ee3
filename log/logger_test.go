package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/zalgonoise/cfg"
	"github.com/zalgonoise/x/is"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNew(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		opts     []cfg.Option[Config]
		debug    bool
		contains []string
	}{
		{
			name:     "JSON",
			opts:     []cfg.Option[Config]{AsJSON()},
			contains: []string{`"msg":"hello"`, `"field":"minute"`},
		},
		{
			name:     "Text",
			opts:     []cfg.Option[Config]{AsText()},
			contains: []string{"msg=hello", "field=minute"},
		},
		{
			name:     "WithSource",
			opts:     []cfg.Option[Config]{WithSource()},
			contains: []string{`"source"`},
		},
		{
			name:     "DebugLevel",
			opts:     []cfg.Option[Config]{WithLevel(slog.LevelDebug)},
			debug:    true,
			contains: []string{`"level":"DEBUG"`},
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(nil, append(testcase.opts, WithWriter(buf))...)

			if testcase.debug {
				logger.Debug("hello", slog.String("field", "minute"))
			} else {
				logger.Info("hello", slog.String("field", "minute"))
			}

			for _, s := range testcase.contains {
				is.True(t, strings.Contains(buf.String(), s))
			}
		})
	}
}

func TestNewDefaultLevelSkipsDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(nil, WithWriter(buf))

	logger.Debug("hidden")

	is.Equal(t, 0, buf.Len())
}

func TestSpanContextHandler(t *testing.T) {
	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer("test").Start(context.Background(), "test")
	defer span.End()

	for _, testcase := range []struct {
		name       string
		withSpanID bool
	}{
		{name: "TraceIDOnly"},
		{name: "WithSpanID", withSpanID: true},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(slog.NewJSONHandler(buf, nil), WithTraceContext(testcase.withSpanID))

			logger.InfoContext(ctx, "traced")

			record := map[string]any{}
			is.Empty(t, json.Unmarshal(buf.Bytes(), &record))

			traceID, _ := record[traceIDKey].(string)
			is.Equal(t, span.SpanContext().TraceID().String(), traceID)

			_, hasSpanID := record[spanIDKey]
			is.Equal(t, testcase.withSpanID, hasSpanID)
		})
	}

	t.Run("NoSpan", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(slog.NewJSONHandler(buf, nil), WithTraceContext(true))

		logger.With(slog.String("k", "v")).WithGroup("g").Info("untraced")

		is.True(t, !strings.Contains(buf.String(), traceIDKey))
	})
}

func TestNoOp(t *testing.T) {
	h := NoOp()

	is.True(t, !h.Enabled(context.Background(), slog.LevelError))
	is.Empty(t, h.Handle(context.Background(), slog.Record{}))
	is.Equal(t, h, h.WithAttrs(nil))
	is.Equal(t, h, h.WithGroup("group"))
}
