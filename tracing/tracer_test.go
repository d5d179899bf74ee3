package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/zalgonoise/cfg"
	"github.com/zalgonoise/x/is"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestTracer(t *testing.T) {
	for _, testcase := range []struct {
		name  string
		setup func(*testing.T) ShutdownFunc
	}{
		{
			name: "Success/WithInit",
			setup: func(t *testing.T) ShutdownFunc {
				done, err := Init(NoopExporter())
				is.Empty(t, err)

				return done
			},
		},
		{
			name: "Success/NoInit",
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			if testcase.setup != nil {
				done := testcase.setup(t)

				//nolint:errcheck // testing: we are sure noopTracer returns a nil error
				defer done(context.Background())
			}

			tracer := Tracer()
			is.True(t, tracer != nil)
		})
	}
}

func TestInit(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		exporter sdktrace.SpanExporter
	}{
		{
			name:     "Success",
			exporter: NoopExporter(),
		},
		{
			name: "Success/NilExporter",
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			ctx := context.Background()
			done, err := Init(testcase.exporter)
			//nolint:errcheck // testing: we are sure noopTracer returns a nil error
			defer done(ctx)
			is.Empty(t, err)
		})
	}
}

func TestGRPCExporter(t *testing.T) {
	for _, testcase := range []struct {
		name string
		opts []cfg.Option[Config]
	}{
		{
			name: "Success/Insecure",
			opts: []cfg.Option[Config]{WithTimeout(time.Second)},
		},
		{
			name: "Success/BasicAuth",
			opts: []cfg.Option[Config]{WithBasicAuth("user", "pass")},
		},
		{
			name: "Success/TLS",
			opts: []cfg.Option[Config]{WithTLS()},
		},
		{
			name: "Success/NegativeTimeoutIgnored",
			opts: []cfg.Option[Config]{WithTimeout(-time.Second), WithBasicAuth("", "")},
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			exporter, err := GRPCExporter("localhost:4317", testcase.opts...)
			is.Empty(t, err)
			is.True(t, exporter != nil)

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			_ = exporter.Shutdown(ctx)
		})
	}
}

func TestBasicAuth(t *testing.T) {
	auth := basicAuth{username: "user", password: "pass"}

	md, err := auth.GetRequestMetadata(context.Background())
	is.Empty(t, err)
	is.Equal(t, "Basic dXNlcjpwYXNz", md[authKey])
	is.True(t, auth.RequireTransportSecurity())
}

func TestConfig(t *testing.T) {
	config := cfg.New(WithBasicAuth("user", "pass"), WithTimeout(time.Second))

	is.True(t, config.useTLS)
	is.Equal(t, time.Second, config.timeout)

	config = cfg.New(WithBasicAuth("", ""), WithTimeout(-time.Second))

	is.True(t, !config.useTLS)
	is.Equal(t, time.Duration(0), config.timeout)
}
