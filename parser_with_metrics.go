package cronparser

import (
	"context"
	"time"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
	"github.com/TobiAdeniyi/cron-expression-parser/metrics"
	"github.com/TobiAdeniyi/cron-expression-parser/schedule"
)

// Metrics describes the actions that register Parser-related metrics.
type Metrics interface {
	// IncParseCalls increases the count of Parse calls, by the Parser.
	IncParseCalls(ctx context.Context)
	// IncParseErrors increases the count of Parse call errors, by the Parser, labeled with the error's reason.
	IncParseErrors(ctx context.Context, reason string)
	// ObserveParseLatency registers the duration of a Parse call, by the Parser.
	ObserveParseLatency(ctx context.Context, dur time.Duration)
}

type withMetrics struct {
	p Parser
	m Metrics
}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
func (p withMetrics) Parse(ctx context.Context, cron string) (schedule.Schedule, error) {
	start := time.Now()

	p.m.IncParseCalls(ctx)

	s, err := p.p.Parse(ctx, cron)

	p.m.ObserveParseLatency(ctx, time.Since(start))

	if err != nil {
		p.m.IncParseErrors(ctx, cronerr.ReasonOf(err).String())

		return s, err
	}

	return s, nil
}

// AddMetrics decorates the input Parser with metrics, using the input Metrics interface.
//
// If the input Parser is nil or a no-op Parser, a no-op Parser is returned. If the input Metrics is nil or if it
// is a no-op Metrics interface, then the input Parser is returned as-is.
//
// If the input Parser is already a Parser with metrics, then this Parser with metrics is returned with the new
// Metrics interface configured in place of the former.
//
// Otherwise, the Parser is decorated with metrics within a custom type that implements Parser.
func AddMetrics(p Parser, m Metrics) Parser {
	if p == nil || p == NoOp() {
		return NoOp()
	}

	if m == nil || m == metrics.NoOp() {
		return p
	}

	if metric, ok := p.(withMetrics); ok {
		metric.m = m

		return metric
	}

	return withMetrics{
		p: p,
		m: m,
	}
}
