package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

const defaultPort = 13003

type Prometheus struct {
	server *http.Server

	parseCount       prometheus.Counter
	parseErrorCount  *prometheus.CounterVec
	parseLatency     prometheus.Histogram
	apiRequestsCount *prometheus.CounterVec
	up               prometheus.Gauge
}

func (m Prometheus) IncParseCalls(context.Context) {
	m.parseCount.Inc()
}

func (m Prometheus) IncParseErrors(_ context.Context, reason string) {
	m.parseErrorCount.WithLabelValues(reason).Inc()
}

func (m Prometheus) ObserveParseLatency(ctx context.Context, dur time.Duration) {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		m.parseLatency.(prometheus.ExemplarObserver).ObserveWithExemplar(
			dur.Seconds(),
			prometheus.Labels{traceIDKey: sc.TraceID().String()},
		)

		return
	}

	m.parseLatency.Observe(dur.Seconds())
}

func (m Prometheus) IncAPIRequests(_ context.Context, code int) {
	m.apiRequestsCount.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m Prometheus) IsUp(_ context.Context, up bool) {
	if up {
		m.up.Set(1.0)

		return
	}

	m.up.Set(0.0)
}

func (m Prometheus) Registry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	for _, metric := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			ReportErrors: false,
		}),
		m.parseCount,
		m.parseErrorCount,
		m.parseLatency,
		m.apiRequestsCount,
		m.up,
	} {
		err := reg.Register(metric)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func (m Prometheus) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}

	return m.server.Shutdown(ctx)
}

// NewPrometheus creates the Prometheus instruments without serving them, so that the caller can mount the
// registry's handler on its own server.
func NewPrometheus() Prometheus {
	return Prometheus{
		parseCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cron_parse_calls_total",
			Help: "Count of cron expressions parsed",
		}),
		parseErrorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cron_parse_errors_total",
			Help: "Count of cron expressions rejected, by reason",
		}, []string{"reason"}),
		parseLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cron_parse_latency",
			Help:    "Histogram of cron expression parse times",
			Buckets: bucketBoundaries,
		}),
		apiRequestsCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Count of HTTP API requests, by status code",
		}, []string{"code"}),
		up: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cron_parser_up",
			Help: "Signals whether the cron parser API is running or not",
		}),
	}
}

func newPrometheus(port int) (Metrics, error) {
	if port <= 0 {
		port = defaultPort
	}

	prom := NewPrometheus()

	mux := http.NewServeMux()

	reg, err := prom.Registry()
	if err != nil {
		return noOpMetrics{}, err
	}

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		Registry:          reg,
		EnableOpenMetrics: true,
	}))

	prom.server = &http.Server{
		Handler:      mux,
		Addr:         fmt.Sprintf(":%d", port),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		if err := prom.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	return prom, nil
}
