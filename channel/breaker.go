package channel

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
	gobreakerredis "github.com/sony/gobreaker/v2/redis"

	"github.com/kroma-labs/wire-go/wire"
)

// NewRedisBreakerStore builds a gobreaker.SharedDataStore backed by
// Redis, for a BreakerChannel shared across multiple client instances.
// Grounded on sentinel-go's httpclient.NewRedisStore.
func NewRedisBreakerStore(client redis.UniversalClient) gobreaker.SharedDataStore {
	return gobreakerredis.NewStoreFromClient(client)
}

// BreakerConfig configures NewBreakerChannel, grounded on
// sentinel-go's httpclient.BreakerConfig.
type BreakerConfig struct {
	// Name identifies the breaker in OnStateChange callbacks and
	// distributed store keys.
	Name string

	// MaxRequests allowed through while half-open. Default: 1.
	MaxRequests uint32

	// Interval clears internal counts on a cycle while closed. Zero
	// disables periodic clearing.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	// Default: 10s.
	Timeout time.Duration

	// FailureThreshold is the minimum request count before the
	// failure-ratio rule can trip the breaker. Default: 20.
	FailureThreshold uint32

	// FailureRatio trips the breaker once TotalFailures/Requests
	// reaches this ratio. Default: 0.5.
	FailureRatio float64

	// ConsecutiveFailures trips the breaker immediately once reached,
	// independent of FailureRatio. Default: 5.
	ConsecutiveFailures uint32

	// Store, if non-nil, shares breaker state across instances (see
	// NewRedisBreakerStore). Nil keeps the breaker local/in-memory.
	Store gobreaker.SharedDataStore

	// Classifier decides whether a successful response counts as a
	// breaker failure. Default: any 5xx response counts, a 4xx never
	// does. Transport/IO errors from inner always count.
	Classifier RetryClassifier

	// OnStateChange is invoked on every breaker state transition.
	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultBreakerConfig returns sentinel-go's default local breaker
// thresholds: 10s open timeout, 20-request minimum sample, 50%
// failure ratio, or 5 consecutive failures.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:                name,
		MaxRequests:         1,
		Interval:            10 * time.Second,
		Timeout:             10 * time.Second,
		FailureThreshold:    20,
		FailureRatio:        0.5,
		ConsecutiveFailures: 5,
	}
}

// errBreakerFailure classifies a completed attempt as a failure for
// gobreaker's ReadyToTrip accounting, without discarding the original
// response/error pair.
var errBreakerFailure = errors.New("channel: breaker-classified failure")

type breakerChannel struct {
	inner Channel
	cb    *gobreaker.CircuitBreaker[*wire.Response]
	cfg   BreakerConfig
}

// NewBreakerChannel wraps inner with a circuit breaker: once cfg's
// trip conditions are met, Execute fails fast with
// gobreaker.ErrOpenState instead of invoking inner, until the open
// timeout elapses and a half-open probe succeeds. Grounded on
// sentinel-go's circuitBreakerTransport.
func NewBreakerChannel(inner Channel, cfg BreakerConfig) Channel {
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Classifier == nil {
		cfg.Classifier = func(resp *wire.Response, _ error) bool {
			return resp != nil && resp.StatusCode >= 500
		}
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if cfg.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= cfg.ConsecutiveFailures {
				return true
			}
			if cfg.FailureThreshold > 0 && counts.Requests < cfg.FailureThreshold {
				return false
			}
			if cfg.FailureRatio > 0 && counts.Requests > 0 {
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)
				return ratio >= cfg.FailureRatio
			}
			return false
		},
		OnStateChange: cfg.OnStateChange,
	}

	var cb *gobreaker.CircuitBreaker[*wire.Response]
	if cfg.Store != nil {
		dcb, err := gobreaker.NewDistributedCircuitBreaker[*wire.Response](cfg.Store, settings)
		if err == nil {
			cb = dcb
		}
	}
	if cb == nil {
		cb = gobreaker.NewCircuitBreaker[*wire.Response](settings)
	}

	return &breakerChannel{inner: inner, cb: cb, cfg: cfg}
}

// Execute runs request through the breaker. A real transport/IO error
// from inner always counts against the breaker and propagates
// unchanged. A successful response additionally counts as a breaker
// failure (via a synthetic error gobreaker sees but the caller never
// does) when the classifier says so — e.g. a 500 should trip the
// breaker even though no Go error occurred.
func (c *breakerChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		resp, err := c.cb.Execute(func() (*wire.Response, error) {
			resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
			if err != nil {
				return nil, err
			}
			if c.cfg.Classifier(resp, nil) {
				return resp, errBreakerFailure
			}
			return resp, nil
		})
		if errors.Is(err, errBreakerFailure) {
			return resp, nil
		}
		return resp, err
	})
}
