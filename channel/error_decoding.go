package channel

import (
	"context"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

// errorDecodingChannel inspects successful futures (no transport/IO
// error) whose response status falls outside [200, 300) and turns
// them into a *remoteerror.RemoteError failure, per §4.6. Inside
// [200, 300) the decoder is never invoked, and responses pass through
// unchanged so the body remains available for the caller's own
// deserializer.
type errorDecodingChannel struct {
	inner Channel
}

// NewErrorDecodingChannel wraps inner with remote-error decoding.
// This does not follow 3xx redirects; a 3xx response is decoded as a
// RemoteError like any other non-2xx status, per spec's observed
// behavior.
func NewErrorDecodingChannel(inner Channel) Channel {
	return &errorDecodingChannel{inner: inner}
}

func (c *errorDecodingChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
		if err != nil {
			return nil, err
		}
		if resp.IsSuccess() {
			return resp, nil
		}
		remoteErr, decodeErr := remoteerror.Decode(resp)
		if decodeErr != nil {
			return nil, decodeErr
		}
		return nil, remoteErr
	})
}
