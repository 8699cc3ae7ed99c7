package channel

import (
	"context"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

// retryingChannel retries on future-completion errors (transport/IO
// failures) only; a successful future carrying a non-2xx response is
// never retried here, per spec. It performs no backoff — attempts
// fire back to back — and reuses the same *wire.Request across
// attempts, which requires RequestBody.Reproducible: with maxAttempts
// > 1, a non-reproducible body fails with a remoteerror.Precondition
// before any attempt.
type retryingChannel struct {
	inner       Channel
	maxAttempts int
}

// NewRetryingChannel wraps inner with unconditional, backoff-free
// retry up to maxAttempts total attempts (maxAttempts >= 1). Pair with
// NewBackoffChannel for paced retries, or NewClassifyingChannel +
// NewBackoffChannel to retry only transient failures.
func NewRetryingChannel(inner Channel, maxAttempts int) Channel {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryingChannel{inner: inner, maxAttempts: maxAttempts}
}

func (c *retryingChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	if c.maxAttempts > 1 && request != nil && request.Body != nil && !request.Body.Reproducible() {
		return Resolved(nil, remoteerror.NewPrecondition("request.body"))
	}
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		var lastErr error
		for attempt := 1; attempt <= c.maxAttempts; attempt++ {
			resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
			if err == nil {
				return resp, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				// Cancellation observed mid-retry: stop without
				// another attempt, per the cancellation contract.
				return nil, err
			}
		}
		return nil, lastErr
	})
}
