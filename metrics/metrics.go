package metrics

import (
	"context"
	"time"

	"github.com/zalgonoise/cfg"
)

const (
	// traceIDKey is used as the trace ID key value in the prometheus.Labels in a prometheus.Exemplar.
	//
	// Its value of `trace_id` complies with the OpenTelemetry specification for metrics' exemplars, as seen in:
	// https://opentelemetry.io/docs/specs/otel/metrics/data-model/#exemplars
	traceIDKey = "trace_id"
)

// Metrics describes the actions that register cron parser metrics, for both the parser and its HTTP API.
type Metrics interface {
	IncParseCalls(ctx context.Context)
	IncParseErrors(ctx context.Context, reason string)
	ObserveParseLatency(ctx context.Context, dur time.Duration)
	IncAPIRequests(ctx context.Context, code int)
	IsUp(ctx context.Context, isUp bool)
}

// New creates a Metrics registry from the input cfg.Option(s), also returning an error if raised.
//
// By default (or with ViaPrometheus), a Prometheus registry is created and served on the configured port. With
// ViaOtel, the instruments are created on the global OpenTelemetry meter provider (see Init).
func New(options ...cfg.Option[Config]) (Metrics, error) {
	config := cfg.New(options...)

	switch config.metricsType {
	case metricsViaOtel:
		return NewOtel()
	default:
		return newPrometheus(config.serverPort)
	}
}
