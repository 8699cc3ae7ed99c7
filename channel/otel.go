package channel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kroma-labs/wire-go/wire"
)

// otelChannel wraps inner with a span and a duration measurement per
// call, grounded on sentinel-go's otelTransport/metrics.go
// instrumentation, reattached to the Channel.Execute seam instead of
// http.RoundTripper.
type otelChannel struct {
	inner    Channel
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

// NewOtelChannel wraps inner with OpenTelemetry tracing (one span per
// Execute, named "wire.<method>") and a request-duration histogram
// ("wire.client.request.duration", in seconds). tracerProvider/
// meterProvider may be nil to use the global providers.
func NewOtelChannel(inner Channel, tracerProvider trace.TracerProvider, meterProvider metric.MeterProvider) Channel {
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}
	tracer := tracerProvider.Tracer("github.com/kroma-labs/wire-go/channel")
	meter := meterProvider.Meter("github.com/kroma-labs/wire-go/channel")
	duration, _ := meter.Float64Histogram(
		"wire.client.request.duration",
		metric.WithDescription("Duration of wire-go RPC calls in seconds"),
		metric.WithUnit("s"),
	)
	return &otelChannel{inner: inner, tracer: tracer, duration: duration}
}

func (c *otelChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	ctx, span := c.tracer.Start(ctx, "wire."+endpoint.HTTPMethod(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", endpoint.HTTPMethod())),
	)
	start := time.Now()

	inner := c.inner.Execute(ctx, endpoint, request)
	f := newFuture(func() { inner.Cancel() })
	go func() {
		resp, err := inner.Get(ctx)
		elapsed := time.Since(start).Seconds()

		attrs := []attribute.KeyValue{attribute.String("http.request.method", endpoint.HTTPMethod())}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("http.response.status_code", resp.Code()))
			if resp.Code() >= 500 {
				span.SetStatus(codes.Error, "")
			}
			attrs = append(attrs, attribute.Int("http.response.status_code", resp.Code()))
		}
		if c.duration != nil {
			c.duration.Record(ctx, elapsed, metric.WithAttributes(attrs...))
		}
		span.End()
		f.resolve(resp, err)
	}()
	return f
}
