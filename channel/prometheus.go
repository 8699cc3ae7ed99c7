package channel

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kroma-labs/wire-go/wire"
)

// prometheusChannel records call count, latency, and status per
// endpoint method, grounded on sentinel-go httpserver's prometheus.go
// instrumentation pattern reattached to the client-call path.
type prometheusChannel struct {
	inner    Channel
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// PrometheusMetrics bundles the collectors NewPrometheusChannel
// populates; register it with a prometheus.Registerer once per
// process, then reuse across every client built from the same
// registry.
type PrometheusMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewPrometheusMetrics builds and registers the collector set under
// namespace "wire" on reg. Pass prometheus.DefaultRegisterer for the
// global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wire",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total RPC calls by method and outcome.",
		}, []string{"method", "status", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wire",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "RPC call duration in seconds by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}

// NewPrometheusChannel wraps inner with Prometheus instrumentation
// using the collectors in m.
func NewPrometheusChannel(inner Channel, m *PrometheusMetrics) Channel {
	return &prometheusChannel{inner: inner, requests: m.Requests, duration: m.Duration}
}

func (c *prometheusChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		start := time.Now()
		resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
		c.duration.WithLabelValues(endpoint.HTTPMethod()).Observe(time.Since(start).Seconds())

		status, outcome := "", "error"
		if err == nil {
			status = strconv.Itoa(resp.Code())
			outcome = "success"
		}
		c.requests.WithLabelValues(endpoint.HTTPMethod(), status, outcome).Inc()
		return resp, err
	})
}
