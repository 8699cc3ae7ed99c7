package channel

import (
	"context"

	"github.com/kroma-labs/wire-go/wire"
)

// Channel is the sole composition point for cross-cutting concerns.
// Implementations must be safe for concurrent use by multiple callers
// and must hold no per-call mutable state.
type Channel interface {
	Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future
}

// Func adapts a plain function to the Channel interface, the same
// role http.RoundTripper's RoundTripperFunc analog plays for
// sentinel-go's test doubles and one-off decorators.
type Func func(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future

// Execute implements Channel.
func (f Func) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return f(ctx, endpoint, request)
}
