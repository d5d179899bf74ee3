package httpapi

import (
	"log/slog"

	"github.com/zalgonoise/cfg"
	"go.opentelemetry.io/otel/trace"
)

const defaultAddr = ":8080"

// Config holds the Server's listen address and its optional observability dependencies.
type Config struct {
	addr    string
	handler slog.Handler
	metrics Metrics
	tracer  trace.Tracer
}

// WithAddr sets the address the Server listens on.
func WithAddr(addr string) cfg.Option[Config] {
	if addr == "" {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.addr = addr

		return config
	})
}

// WithLogHandler sets the slog.Handler used by the Server.
func WithLogHandler(handler slog.Handler) cfg.Option[Config] {
	if handler == nil {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.handler = handler

		return config
	})
}

// WithMetrics sets the Metrics registering the Server's requests.
func WithMetrics(m Metrics) cfg.Option[Config] {
	if m == nil {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.metrics = m

		return config
	})
}

// WithTrace sets the trace.Tracer spanning the Server's requests.
func WithTrace(tracer trace.Tracer) cfg.Option[Config] {
	if tracer == nil {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register(func(config Config) Config {
		config.tracer = tracer

		return config
	})
}
