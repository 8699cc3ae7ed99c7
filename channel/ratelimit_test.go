package channel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

func TestRateLimitChannelRejectsOverBurstWithoutWaiting(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubResponse(200, "text/plain", "ok")

	limited := channel.NewRateLimitChannel(mock, channel.RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             1,
		WaitOnLimit:       false,
	})

	endpoint := testEndpoint()
	_, err := limited.Execute(context.Background(), endpoint, wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)

	_, err = limited.Execute(context.Background(), endpoint, wire.NewRequest()).Get(context.Background())
	require.Error(t, err, "the second call within the same instant should exceed the single-token burst")
	assert.Equal(t, 1, mock.CallCount(), "a rejected call must never reach the inner channel")
}

func TestRateLimitChannelWaitsForTokenWhenConfigured(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubResponse(200, "text/plain", "ok")

	limited := channel.NewRateLimitChannel(mock, channel.RateLimitConfig{
		RequestsPerSecond: 1000,
		Burst:             1,
		WaitOnLimit:       true,
	})

	endpoint := testEndpoint()
	_, err := limited.Execute(context.Background(), endpoint, wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	resp, err := limited.Execute(ctx, endpoint, wire.NewRequest()).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.Equal(t, 2, mock.CallCount())
}
