package cronparser

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
	"github.com/TobiAdeniyi/cron-expression-parser/schedule"
)

type withTrace struct {
	p      Parser
	tracer trace.Tracer
}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
func (p withTrace) Parse(ctx context.Context, cron string) (schedule.Schedule, error) {
	ctx, span := p.tracer.Start(ctx, "Parser.Parse")
	defer span.End()

	span.SetAttributes(attribute.String("expression", cron))

	s, err := p.p.Parse(ctx, cron)
	if err != nil {
		span.SetAttributes(attribute.String("reason", cronerr.ReasonOf(err).String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return s, err
	}

	span.SetAttributes(attribute.String("command", s.Command()))

	return s, nil
}

// AddTraces decorates the input Parser with tracing, using the input trace.Tracer.
//
// If the input Parser is nil or a no-op Parser, a no-op Parser is returned. If the input trace.Tracer is nil,
// then the input Parser is returned as-is.
//
// If the input Parser is already a Parser with tracing, then this Parser with tracing is returned with the new
// trace.Tracer configured in place of the former.
//
// Otherwise, the Parser is decorated with tracing within a custom type that implements Parser.
func AddTraces(p Parser, tracer trace.Tracer) Parser {
	if p == nil || p == NoOp() {
		return NoOp()
	}

	if tracer == nil {
		return p
	}

	if traced, ok := p.(withTrace); ok {
		traced.tracer = tracer

		return traced
	}

	return withTrace{
		p:      p,
		tracer: tracer,
	}
}
