package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const defaultInterval = 500 * time.Millisecond
const ServiceName = "cronparser"

type ShutdownFunc func(ctx context.Context) error

func Meter() metric.Meter {
	return otel.GetMeterProvider().Meter(ServiceName)
}

//nolint:gochecknoglobals // immutable histogram buckets shared by both implementations
var bucketBoundaries = []float64{
	.000001, .000005, .00001, .00005, .0001, .0005, .001, .0025, .005, .01, .025, .05, .1,
}

type Otel struct {
	parseCount       metric.Int64Counter
	parseErrorCount  metric.Int64Counter
	parseLatency     metric.Float64Histogram
	apiRequestsCount metric.Int64Counter
	up               metric.Int64Gauge
}

func NewOtel() (*Otel, error) {
	parseCount, err := Meter().Int64Counter(
		"cron_parse_calls_total",
		metric.WithUnit("calls"),
		metric.WithDescription("Count of cron expressions parsed"),
	)
	if err != nil {
		return nil, err
	}

	parseErrorCount, err := Meter().Int64Counter(
		"cron_parse_errors_total",
		metric.WithUnit("calls"),
		metric.WithDescription("Count of cron expressions rejected, by reason"),
	)
	if err != nil {
		return nil, err
	}

	parseLatency, err := Meter().Float64Histogram(
		"cron_parse_latency",
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(bucketBoundaries...),
		metric.WithDescription("Histogram of cron expression parse times"),
	)
	if err != nil {
		return nil, err
	}

	apiRequestsCount, err := Meter().Int64Counter(
		"api_requests_total",
		metric.WithUnit("requests"),
		metric.WithDescription("Count of HTTP API requests, by status code"),
	)
	if err != nil {
		return nil, err
	}

	up, err := Meter().Int64Gauge(
		"cron_parser_up",
		metric.WithUnit("up"),
		metric.WithDescription("Signals whether the cron parser API is running or not"),
	)
	if err != nil {
		return nil, err
	}

	return &Otel{
		parseCount:       parseCount,
		parseErrorCount:  parseErrorCount,
		parseLatency:     parseLatency,
		apiRequestsCount: apiRequestsCount,
		up:               up,
	}, nil
}

func (m *Otel) IncParseCalls(ctx context.Context) {
	m.parseCount.Add(ctx, 1)
}

func (m *Otel) IncParseErrors(ctx context.Context, reason string) {
	m.parseErrorCount.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *Otel) ObserveParseLatency(ctx context.Context, dur time.Duration) {
	m.parseLatency.Record(ctx, dur.Seconds())
}

func (m *Otel) IncAPIRequests(ctx context.Context, code int) {
	m.apiRequestsCount.Add(ctx, 1, metric.WithAttributes(attribute.Int("code", code)))
}

func (m *Otel) IsUp(ctx context.Context, isUp bool) {
	var up int64
	if isUp {
		up = 1
	}

	m.up.Record(ctx, up)
}

// Init registers a global OpenTelemetry meter provider that pushes metrics to the input OTLP/HTTP endpoint.
func Init(ctx context.Context, uri string) (ShutdownFunc, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(uri),
		otlpmetrichttp.WithInsecure(),
		otlpmetrichttp.WithRetry(otlpmetrichttp.RetryConfig{
			Enabled:         true,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     500 * time.Millisecond,
			MaxElapsedTime:  time.Minute,
		}),
	)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
		exporter,
		sdkmetric.WithInterval(defaultInterval),
	)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	return meterProvider.Shutdown, nil
}
