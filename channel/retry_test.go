package channel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/urlbuilder"
	"github.com/kroma-labs/wire-go/wire"
)

func testEndpoint() wire.Endpoint {
	tmpl := urlbuilder.NewTemplateBuilder().Fixed("ping").Build()
	return wire.NewEndpoint("GET", tmpl)
}

// countingChannel fails the first failCount invocations, then succeeds.
type countingChannel struct {
	failCount int
	calls     atomic.Int32
}

func (c *countingChannel) Execute(ctx context.Context, _ wire.Endpoint, _ *wire.Request) *channel.Future {
	n := c.calls.Add(1)
	if int(n) <= c.failCount {
		return channel.Resolved(nil, errors.New("boom"))
	}
	return channel.Resolved(wire.NewResponse(200, nil, nil), nil)
}

func TestRetryToSuccess(t *testing.T) {
	inner := &countingChannel{failCount: 2}
	retrying := channel.NewRetryingChannel(inner, 3)

	resp, err := retrying.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.EqualValues(t, 3, inner.calls.Load())
}

func TestRetryExhausted(t *testing.T) {
	inner := &countingChannel{failCount: 100}
	retrying := channel.NewRetryingChannel(inner, 3)

	_, err := retrying.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 3, inner.calls.Load())
}

func TestRetryPassthroughOnFirstSuccess(t *testing.T) {
	inner := &countingChannel{failCount: 0}
	retrying := channel.NewRetryingChannel(inner, 5)

	resp, err := retrying.Execute(context.Background(), testEndpoint(), wire.NewRequest()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.EqualValues(t, 1, inner.calls.Load())
}
