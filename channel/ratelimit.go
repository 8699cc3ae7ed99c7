package channel

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

// rateLimitChannel throttles calls to a sustained rate with burst
// headroom, grounded on sentinel-go's rateLimitTransport.
type rateLimitChannel struct {
	inner   Channel
	limiter *rate.Limiter
	wait    bool
}

// RateLimitConfig configures NewRateLimitChannel.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained call rate.
	RequestsPerSecond float64

	// Burst is the maximum number of calls admitted in a burst.
	Burst int

	// WaitOnLimit, if true, blocks Execute until a token is available
	// (bounded by ctx); if false, Execute fails immediately with a
	// remoteerror.InvalidArgument once the limit is hit.
	WaitOnLimit bool
}

// NewRateLimitChannel wraps inner with a token-bucket limiter.
func NewRateLimitChannel(inner Channel, cfg RateLimitConfig) Channel {
	return &rateLimitChannel{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		wait:    cfg.WaitOnLimit,
	}
}

func (c *rateLimitChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		if c.wait {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		} else if !c.limiter.Allow() {
			return nil, remoteerror.NewInvalidArgument("rate limit exceeded")
		}
		return c.inner.Execute(ctx, endpoint, request).Get(ctx)
	})
}
