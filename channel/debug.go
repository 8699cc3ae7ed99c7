package channel

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kroma-labs/wire-go/wire"
)

// debugChannel logs each call's endpoint, status, and duration via
// zerolog, grounded on sentinel-go's debug.go logRequest/logResponse
// helpers reattached to Channel.Execute.
type debugChannel struct {
	inner  Channel
	logger zerolog.Logger
}

// NewDebugChannel wraps inner with request/response debug logging at
// zerolog.DebugLevel.
func NewDebugChannel(inner Channel, logger zerolog.Logger) Channel {
	return &debugChannel{inner: inner, logger: logger}
}

func (c *debugChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		start := time.Now()
		c.logger.Debug().
			Str("http_method", endpoint.HTTPMethod()).
			Interface("path_params", request.PathParams).
			Msg("wire request")

		resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
		elapsed := time.Since(start)

		ev := c.logger.Debug().Dur("duration", elapsed)
		if err != nil {
			ev.Err(err).Msg("wire response error")
			return nil, err
		}
		ev.Int("status", resp.Code()).Msg("wire response")
		return resp, nil
	})
}
