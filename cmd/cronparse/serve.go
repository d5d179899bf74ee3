package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cronparser "github.com/TobiAdeniyi/cron-expression-parser"
	"github.com/TobiAdeniyi/cron-expression-parser/httpapi"
	"github.com/TobiAdeniyi/cron-expression-parser/metrics"
	"github.com/TobiAdeniyi/cron-expression-parser/tracing"
)

const (
	flagAddr        = "addr"
	flagMetricsPort = "metrics-port"

	defaultMetricsPort = 13003
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cron parser as an HTTP API",
		Long: `Serves GET /v1/parse?expr=<expression>, responding with the parsed schedule as JSON.
Prometheus metrics are served on /metrics, on a separate port.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, v)
		},
	}

	cmd.Flags().String(flagAddr, ":8080", "address to serve the API on")
	cmd.Flags().Int(flagMetricsPort, defaultMetricsPort, "port to serve Prometheus metrics on")

	return cmd
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()

	tel, err := setupTelemetry(ctx, v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	defer tel.shutdown(ctx)

	// without an OTLP metrics endpoint, metrics are served via Prometheus
	if tel.metrics == nil {
		m, err := metrics.New(metrics.ViaPrometheus(), metrics.WithPort(v.GetInt(flagMetricsPort)))
		if err != nil {
			return err
		}

		tel.metrics = m
		tel.addShutdown(m)
	}

	tel.metrics.IsUp(ctx, true)
	defer tel.metrics.IsUp(ctx, false)

	srv := httpapi.New(
		cronparser.New(tel.parserOptions()...),
		httpapi.WithAddr(v.GetString(flagAddr)),
		httpapi.WithLogHandler(tel.logger.Handler()),
		httpapi.WithMetrics(tel.metrics),
		httpapi.WithTrace(tracing.Tracer()),
	)

	return srv.ListenAndServe(ctx)
}
