// Command demo wires a UserService Client against a local test
// server, exercising the full wire-go decorator stack: request
// coalescing, rate limiting, classified/paced backoff retry, circuit
// breaking (optionally Redis-backed), OpenTelemetry tracing/metrics,
// Prometheus counters, and zerolog debug logging — the same
// composition a real generated client would assemble around
// channel.NewTransportChannel.
package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/example/userservice"
	"github.com/kroma-labs/wire-go/runtime"
)

func main() {
	// .env is optional; WIRE_REDIS_ADDR and WIRE_SERVICE_NAME can
	// override the demo's defaults when present.
	_ = godotenv.Load()
	serviceName := os.Getenv("WIRE_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "userservice-demo"
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"u1","name":"Ada Lovelace","email":"ada@example.com","createdAt":"2024-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	tracerProvider := sdktrace.NewTracerProvider()
	defer func() { _ = tracerProvider.Shutdown(context.Background()) }()
	meterProvider := sdkmetric.NewMeterProvider()
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	registry := prometheus.NewRegistry()
	promMetrics := channel.NewPrometheusMetrics(registry)

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName).Logger()

	transport := channel.NewTransportChannel(server.URL, server.Client())
	ch := channel.Channel(transport)
	ch = channel.NewCoalescingChannel(ch)
	ch = channel.NewRateLimitChannel(ch, channel.RateLimitConfig{RequestsPerSecond: 50, Burst: 10, WaitOnLimit: true})
	ch = channel.NewHedgingChannel(ch, channel.HedgeConfig{Delay: 200 * time.Millisecond, MaxHedges: 1})
	ch = channel.NewClassifyingChannel(ch, channel.DefaultClassifier)
	ch = channel.NewBackoffChannel(ch, channel.DefaultBackoffConfig(3))
	ch = channel.NewErrorDecodingChannel(ch)
	ch = channel.NewPrometheusChannel(ch, promMetrics)
	ch = channel.NewOtelChannel(ch, tracerProvider, meterProvider)
	ch = channel.NewDebugChannel(ch, logger)

	if addr := os.Getenv("WIRE_REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		breakerCfg := channel.DefaultBreakerConfig(serviceName)
		breakerCfg.Store = channel.NewRedisBreakerStore(rdb)
		ch = channel.NewBreakerChannel(ch, breakerCfg)
	} else {
		ch = channel.NewBreakerChannel(ch, channel.DefaultBreakerConfig(serviceName))
	}

	client := userservice.NewClient(ch, runtime.New())

	user, err := client.GetUser(context.Background(), "u1", 5*time.Second)
	if err != nil {
		logger.Fatal().Err(err).Msg("GetUser failed")
	}
	logger.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("fetched user")
}
