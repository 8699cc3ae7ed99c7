package channel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

func TestDefaultClassifierRetriesTransientStatusesAndNetworkErrors(t *testing.T) {
	assert.True(t, channel.DefaultClassifier(wire.NewResponse(http.StatusTooManyRequests, nil, nil), nil))
	assert.True(t, channel.DefaultClassifier(wire.NewResponse(http.StatusServiceUnavailable, nil, nil), nil))
	assert.False(t, channel.DefaultClassifier(wire.NewResponse(http.StatusNotFound, nil, nil), nil))
	assert.False(t, channel.DefaultClassifier(wire.NewResponse(http.StatusOK, nil, nil), nil))

	assert.True(t, channel.DefaultClassifier(nil, errors.New("connection refused")))
	assert.False(t, channel.DefaultClassifier(nil, errors.New("x509: certificate signed by unknown authority")))
	assert.False(t, channel.DefaultClassifier(nil, context.Canceled))
}

func TestClassifyingChannelTagsTransportFailureRetryability(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubError(errors.New("x509: certificate signed by unknown authority"))

	cls := channel.NewClassifyingChannel(mock, channel.DefaultClassifier)

	// A permanent transport failure must not be retried by an outer
	// BackoffChannel: exactly one inner call, never a second attempt.
	backoff := channel.NewBackoffChannel(cls, channel.DefaultBackoffConfig(3))
	_, err := backoff.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestClassifyingChannelConvertsRetryableStatusToFailure(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubResponse(http.StatusServiceUnavailable, "text/plain", "unavailable")

	cls := channel.NewClassifyingChannel(mock, nil)
	_, err := cls.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
	require.Error(t, err, "a 503 classified as transient must surface as a failure for an outer retry/backoff decorator")
}

func TestClassifyingChannelPassesThroughNonRetryableSuccess(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubResponse(http.StatusOK, "text/plain", "ok")

	cls := channel.NewClassifyingChannel(mock, nil)
	resp, err := cls.Execute(context.Background(), wire.NewEndpoint("GET", nil), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code())
}
