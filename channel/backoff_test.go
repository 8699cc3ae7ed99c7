package channel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

func fastBackoffConfig(maxAttempts int) channel.BackoffConfig {
	cfg := channel.DefaultBackoffConfig(maxAttempts)
	cfg.InitialInterval = time.Millisecond
	cfg.MaxInterval = 2 * time.Millisecond
	return cfg
}

func TestBackoffChannelRetriesToSuccess(t *testing.T) {
	inner := &countingChannel{failCount: 2}
	b := channel.NewBackoffChannel(inner, fastBackoffConfig(3))

	resp, err := b.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.EqualValues(t, 3, inner.calls.Load())
}

func TestBackoffChannelExhaustsAttempts(t *testing.T) {
	inner := &countingChannel{failCount: 100}
	b := channel.NewBackoffChannel(inner, fastBackoffConfig(3))

	_, err := b.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 3, inner.calls.Load())
}

func TestBackoffChannelStopsOnNonRetryableClassifiedFailure(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubError(errors.New("tls: handshake failure"))

	composed := channel.NewBackoffChannel(
		channel.NewClassifyingChannel(mock, channel.DefaultClassifier),
		fastBackoffConfig(5),
	)

	_, err := composed.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount(), "a permanent failure must not spend the remaining backoff attempts")
}

func TestBackoffChannelRetriesClassifiedTransientFailure(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubSequence(
		func() (*wire.Response, error) { return nil, errors.New("connection refused") },
		func() (*wire.Response, error) { return wire.NewResponse(200, nil, nil), nil },
	)

	composed := channel.NewBackoffChannel(
		channel.NewClassifyingChannel(mock, channel.DefaultClassifier),
		fastBackoffConfig(3),
	)

	resp, err := composed.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.Equal(t, 2, mock.CallCount())
}
