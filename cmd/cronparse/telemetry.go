package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/viper"
	"github.com/zalgonoise/cfg"

	cronparser "github.com/TobiAdeniyi/cron-expression-parser"
	"github.com/TobiAdeniyi/cron-expression-parser/log"
	"github.com/TobiAdeniyi/cron-expression-parser/metrics"
	"github.com/TobiAdeniyi/cron-expression-parser/tracing"
)

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type shutdownFunc func(ctx context.Context) error

func (fn shutdownFunc) Shutdown(ctx context.Context) error { return fn(ctx) }

// telemetry holds the logger, metrics and tracing set up from the command's flags.
type telemetry struct {
	logger  *slog.Logger
	metrics metrics.Metrics
	traced  bool

	shutdowns []shutdowner
}

func setupTelemetry(ctx context.Context, v *viper.Viper, w io.Writer) (*telemetry, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(flagLogLevel))); err != nil {
		return nil, err
	}

	logOpts := []cfg.Option[log.Config]{log.WithLevel(level), log.WithWriter(w)}
	if v.GetString(flagLogFormat) == outputText {
		logOpts = append(logOpts, log.AsText())
	}

	tel := &telemetry{}

	if endpoint := v.GetString(flagTraceEndpoint); endpoint != "" {
		traceOpts := []cfg.Option[tracing.Config]{
			tracing.WithBasicAuth(v.GetString(flagTraceUsername), v.GetString(flagTracePassword)),
		}

		if v.GetBool(flagTraceTLS) {
			traceOpts = append(traceOpts, tracing.WithTLS())
		}

		exporter, err := tracing.GRPCExporter(endpoint, traceOpts...)
		if err != nil {
			return nil, err
		}

		shutdown, err := tracing.Init(exporter)
		if err != nil {
			return nil, err
		}

		tel.traced = true
		tel.addShutdown(shutdownFunc(shutdown))
		logOpts = append(logOpts, log.WithTraceContext(false))
	}

	tel.logger = log.New(nil, logOpts...)

	if endpoint := v.GetString(flagMetricsEndpoint); endpoint != "" {
		shutdown, err := metrics.Init(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		tel.addShutdown(shutdownFunc(shutdown))

		m, err := metrics.New(metrics.ViaOtel())
		if err != nil {
			return nil, err
		}

		tel.metrics = m
	}

	return tel, nil
}

func (t *telemetry) addShutdown(s any) {
	if sd, ok := s.(shutdowner); ok {
		t.shutdowns = append(t.shutdowns, sd)
	}
}

func (t *telemetry) parserOptions() []cfg.Option[*cronparser.Config] {
	opts := []cfg.Option[*cronparser.Config]{
		cronparser.WithLogger(t.logger),
		cronparser.WithMetrics(t.metrics),
	}

	if t.traced {
		opts = append(opts, cronparser.WithTrace(tracing.Tracer()))
	}

	return opts
}

func (t *telemetry) shutdown(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		if err := t.shutdowns[i].Shutdown(ctx); err != nil {
			t.logger.WarnContext(ctx, "failed to shut down telemetry", slog.String("error", err.Error()))
		}
	}
}
