package metrics

import (
	"context"
	"time"
)

func NoOp() Metrics {
	return noOpMetrics{}
}

type noOpMetrics struct{}

func (noOpMetrics) IncParseCalls(context.Context)                      {}
func (noOpMetrics) IncParseErrors(context.Context, string)             {}
func (noOpMetrics) ObserveParseLatency(context.Context, time.Duration) {}
func (noOpMetrics) IncAPIRequests(context.Context, int)                {}
func (noOpMetrics) IsUp(context.Context, bool)                         {}
func (noOpMetrics) Shutdown(context.Context) error                     { return nil }
