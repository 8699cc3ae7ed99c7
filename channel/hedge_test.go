package channel_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

// slowThenFastChannel answers every call after delay; Execute count is
// tracked so a test can assert whether a hedge attempt actually fired.
type slowThenFastChannel struct {
	delay time.Duration
	calls atomic.Int32
}

func (c *slowThenFastChannel) Execute(ctx context.Context, _ wire.Endpoint, _ *wire.Request) *channel.Future {
	c.calls.Add(1)
	return channel.Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		select {
		case <-time.After(c.delay):
			return wire.NewResponse(200, nil, nil), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

func TestHedgingChannelFiresHedgeAfterDelay(t *testing.T) {
	inner := &slowThenFastChannel{delay: 100 * time.Millisecond}
	hedged := channel.NewHedgingChannel(inner, channel.HedgeConfig{Delay: 10 * time.Millisecond, MaxHedges: 2})

	resp, err := hedged.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.GreaterOrEqual(t, inner.calls.Load(), int32(2), "a slow first attempt should trigger at least one hedge")
}

func TestHedgingChannelSkipsHedgeWhenFirstAttemptIsFast(t *testing.T) {
	inner := &slowThenFastChannel{delay: time.Millisecond}
	hedged := channel.NewHedgingChannel(inner, channel.HedgeConfig{Delay: 100 * time.Millisecond, MaxHedges: 2})

	resp, err := hedged.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.EqualValues(t, 1, inner.calls.Load())
}

func TestHedgingChannelDisabledReturnsInnerUnchanged(t *testing.T) {
	inner := &countingChannel{failCount: 0}
	hedged := channel.NewHedgingChannel(inner, channel.HedgeConfig{})

	resp, err := hedged.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.EqualValues(t, 1, inner.calls.Load())
}

func TestHedgingChannelRejectsNonReproducibleBody(t *testing.T) {
	inner := &slowThenFastChannel{delay: time.Millisecond}
	hedged := channel.NewHedgingChannel(inner, channel.HedgeConfig{Delay: time.Millisecond, MaxHedges: 1})

	req := wire.NewRequest()
	req.Body = wire.NewStreamBody("application/octet-stream", nil, false)

	_, err := hedged.Execute(context.Background(), testEndpoint(), req).Get(context.Background())
	require.Error(t, err)
}
