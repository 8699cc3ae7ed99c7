package channel_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

func TestBreakerChannelTripsAfterConsecutiveFailures(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubError(assert.AnError)

	cfg := channel.DefaultBreakerConfig("test-service")
	cfg.ConsecutiveFailures = 2
	cfg.Interval = 0

	breaker := channel.NewBreakerChannel(mock, cfg)

	for i := 0; i < 2; i++ {
		_, err := breaker.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
		require.Error(t, err)
	}

	callsBeforeOpen := mock.CallCount()
	_, err := breaker.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, callsBeforeOpen, mock.CallCount(), "breaker should reject without invoking inner once open")
}

func TestBreakerChannelWithDistributedRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	mock := channel.NewMockChannel()
	mock.StubResponse(200, "text/plain", "ok")

	cfg := channel.DefaultBreakerConfig("distributed-test")
	cfg.Store = channel.NewRedisBreakerStore(rdb)

	breaker := channel.NewBreakerChannel(mock, cfg)
	resp, err := breaker.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
}
