package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cronparser "github.com/TobiAdeniyi/cron-expression-parser"
	"github.com/TobiAdeniyi/cron-expression-parser/display"
)

const (
	envPrefix = "CRONPARSE"

	outputText = "text"
	outputJSON = "json"

	flagOutput          = "output"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagTraceEndpoint   = "trace-endpoint"
	flagTraceUsername   = "trace-username"
	flagTracePassword   = "trace-password"
	flagTraceTLS        = "trace-tls"
	flagMetricsEndpoint = "metrics-endpoint"
)

var errInvalidOutput = errors.New("invalid output format")

func newRootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "cronparse <expression>",
		Short: "Expand a cron expression into the values of each of its fields",
		Long: `Parses a standard cron expression of five time fields and a command, such as

  cronparse "*/15 0 1,15 * 1-5 /usr/bin/find"

and prints the minutes, hours, days of the month, months and days of the week it matches.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, v, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(flagLogFormat, outputJSON, "log format: json or text")
	flags.String(flagTraceEndpoint, "", "OTLP/gRPC endpoint to export traces to")
	flags.String(flagTraceUsername, "", "basic auth username for the trace endpoint")
	flags.String(flagTracePassword, "", "basic auth password for the trace endpoint")
	flags.Bool(flagTraceTLS, false, "connect to the trace endpoint over TLS")
	flags.String(flagMetricsEndpoint, "", "OTLP/HTTP endpoint to push metrics to")
	cmd.Flags().StringP(flagOutput, "o", outputText, "output format: text or json")

	bindFlags(v, cmd)

	serve := newServeCmd(v)
	bindFlags(v, serve)

	cmd.AddCommand(serve)

	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	_ = v.BindPFlags(cmd.PersistentFlags())
	_ = v.BindPFlags(cmd.Flags())
}

func runParse(cmd *cobra.Command, v *viper.Viper, expr string) error {
	output := v.GetString(flagOutput)
	if output != outputText && output != outputJSON {
		return fmt.Errorf("%w: %q", errInvalidOutput, output)
	}

	ctx := cmd.Context()

	tel, err := setupTelemetry(ctx, v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	defer tel.shutdown(ctx)

	p := cronparser.New(tel.parserOptions()...)

	s, err := p.Parse(ctx, expr)
	if err != nil {
		return err
	}

	if output == outputJSON {
		return display.JSON(cmd.OutOrStdout(), s)
	}

	return display.Table(cmd.OutOrStdout(), s)
}
