package cronparser

import (
	"context"
	"log/slog"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
	"github.com/TobiAdeniyi/cron-expression-parser/log"
	"github.com/TobiAdeniyi/cron-expression-parser/schedule"
)

type withLogs struct {
	p      Parser
	logger *slog.Logger
}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
func (p withLogs) Parse(ctx context.Context, cron string) (schedule.Schedule, error) {
	s, err := p.p.Parse(ctx, cron)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to parse cron expression",
			slog.String("expression", cron),
			slog.String("reason", cronerr.ReasonOf(err).String()),
			slog.String("error", err.Error()),
		)

		return s, err
	}

	p.logger.DebugContext(ctx, "parsed cron expression",
		slog.String("expression", cron),
		slog.String("command", s.Command()),
	)

	return s, nil
}

// AddLogs decorates the input Parser with logging, using the input slog.Handler.
//
// If the input Parser is nil or a no-op Parser, a no-op Parser is returned. If the input slog.Handler is nil or a
// no-op handler, then the input Parser is returned as-is.
//
// If the input Parser is already a Parser with logs, then this Parser with logs is returned with a new logger using
// the input handler, in place of the former.
//
// Otherwise, the Parser is decorated with logs within a custom type that implements Parser.
func AddLogs(p Parser, handler slog.Handler) Parser {
	if p == nil || p == NoOp() {
		return NoOp()
	}

	if handler == nil || handler == log.NoOp() {
		return p
	}

	if logged, ok := p.(withLogs); ok {
		logged.logger = slog.New(handler)

		return logged
	}

	return withLogs{
		p:      p,
		logger: slog.New(handler),
	}
}
