package channel

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/kroma-labs/wire-go/wire"
)

// backoffChannel paces retry attempts with an exponential-backoff
// policy instead of RetryingChannel's immediate back-to-back retries.
// It is a separate, opt-in decorator from the spec-mandated
// RetryingChannel: the core retrying channel stays backoff-free to
// satisfy the immediate-retry testable properties, while production
// callers who want jittered pacing wrap with this one, typically
// around a ClassifyingChannel so only transient failures get another
// attempt.
type backoffChannel struct {
	inner       Channel
	maxAttempts int
	newPolicy   func() *backoff.ExponentialBackOff
}

// BackoffConfig configures NewBackoffChannel, grounded on
// sentinel-go's RetryConfig/ExponentialBackOffFromConfig.
type BackoffConfig struct {
	// MaxAttempts is the total number of attempts, including the
	// first; must be >= 1.
	MaxAttempts int

	// InitialInterval is the first backoff interval. Default: 500ms.
	InitialInterval time.Duration

	// MaxInterval caps the backoff interval. Default: 30s.
	MaxInterval time.Duration

	// Multiplier is the exponential growth factor. Default: 2.0.
	Multiplier float64

	// JitterFactor randomizes each interval by ±factor. Default: 0.5.
	JitterFactor float64
}

// DefaultBackoffConfig returns sentinel-go's default pacing: 500ms
// initial, doubling, capped at 30s, ±50% jitter.
func DefaultBackoffConfig(maxAttempts int) BackoffConfig {
	return BackoffConfig{
		MaxAttempts:     maxAttempts,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.5,
	}
}

// NewBackoffChannel wraps inner so a failed attempt waits per cfg's
// exponential-backoff policy before the next attempt. Compose as
// channel.NewBackoffChannel(channel.NewClassifyingChannel(inner, nil), cfg)
// to only pace retries of transient failures.
func NewBackoffChannel(inner Channel, cfg BackoffConfig) Channel {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.JitterFactor <= 0 {
		cfg.JitterFactor = 0.5
	}
	return &backoffChannel{
		inner:       inner,
		maxAttempts: cfg.MaxAttempts,
		newPolicy: func() *backoff.ExponentialBackOff {
			return &backoff.ExponentialBackOff{
				InitialInterval:     cfg.InitialInterval,
				RandomizationFactor: cfg.JitterFactor,
				Multiplier:          cfg.Multiplier,
				MaxInterval:         cfg.MaxInterval,
			}
		},
	}
}

func (c *backoffChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		policy := c.newPolicy()
		var lastErr error
		for attempt := 1; attempt <= c.maxAttempts; attempt++ {
			resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
			if err == nil {
				return resp, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			var classified *classifiedFailure
			if errors.As(err, &classified) && !classified.retryable {
				// The classifier judged this attempt permanent (e.g. a
				// TLS/DNS failure): spend no further attempts or backoff
				// delay on it.
				return nil, err
			}
			if attempt == c.maxAttempts {
				break
			}
			timer := time.NewTimer(policy.NextBackOff())
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}
		return nil, lastErr
	})
}
