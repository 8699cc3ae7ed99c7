package channel

import (
	"context"
	"time"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

// HedgeConfig configures NewHedgingChannel, grounded on sentinel-go's
// HedgeConfig. Hedging duplicates an in-flight call after Delay if it
// hasn't completed yet; the first attempt to succeed wins, and the
// other attempts are cancelled. Only idempotent
// endpoints should be hedged — a hedge against a create-with-side-
// effects call can duplicate that side effect.
type HedgeConfig struct {
	// Delay is how long to wait before firing a hedge attempt.
	Delay time.Duration

	// MaxHedges is the number of additional attempts fired (in
	// addition to the original), spaced Delay apart.
	MaxHedges int
}

// Enabled reports whether hedging is configured.
func (c HedgeConfig) Enabled() bool { return c.Delay > 0 && c.MaxHedges > 0 }

type hedgingChannel struct {
	inner Channel
	cfg   HedgeConfig
}

// NewHedgingChannel wraps inner so that if the first attempt hasn't
// completed within cfg.Delay, a duplicate attempt is launched; this
// repeats up to cfg.MaxHedges times. Fires against the same Request,
// which requires a reproducible RequestBody just as RetryingChannel
// does. Requires cfg.MaxHedges == 0 on non-reproducible bodies.
func NewHedgingChannel(inner Channel, cfg HedgeConfig) Channel {
	if !cfg.Enabled() {
		return inner
	}
	return &hedgingChannel{inner: inner, cfg: cfg}
}

func (c *hedgingChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	if request.Body != nil && !request.Body.Reproducible() {
		return Resolved(nil, remoteerror.NewPrecondition("request.body"))
	}

	attemptCtx, cancelAttempts := context.WithCancel(ctx)
	f := newFuture(cancelAttempts)

	type result struct {
		resp *wire.Response
		err  error
	}
	results := make(chan result, c.cfg.MaxHedges+1)

	launch := func() {
		go func() {
			resp, err := c.inner.Execute(attemptCtx, endpoint, request).Get(attemptCtx)
			select {
			case results <- result{resp, err}:
			case <-attemptCtx.Done():
			}
		}()
	}

	go func() {
		launch()
		timer := time.NewTimer(c.cfg.Delay)
		defer timer.Stop()
		fired := 1

		for {
			select {
			case r := <-results:
				if r.err == nil {
					cancelAttempts()
					f.resolve(r.resp, nil)
					return
				}
				if fired >= c.cfg.MaxHedges+1 {
					f.resolve(r.resp, r.err)
					return
				}
			case <-timer.C:
				if fired < c.cfg.MaxHedges+1 {
					fired++
					launch()
					timer.Reset(c.cfg.Delay)
				}
			case <-ctx.Done():
				cancelAttempts()
				f.resolve(nil, ctx.Err())
				return
			}
		}
	}()

	return f
}
