package channel_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/wire"
)

// blockingChannel holds every caller until release is closed, then
// answers all of them with the same response while counting how many
// times Execute actually ran its work.
type blockingChannel struct {
	release chan struct{}
	calls   atomic.Int32
}

func (c *blockingChannel) Execute(ctx context.Context, _ wire.Endpoint, _ *wire.Request) *channel.Future {
	c.calls.Add(1)
	return channel.Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		<-c.release
		return wire.NewResponse(200, nil, nil), nil
	})
}

func TestCoalescingChannelCollapsesConcurrentIdenticalCalls(t *testing.T) {
	inner := &blockingChannel{release: make(chan struct{})}
	coalesced := channel.NewCoalescingChannel(inner)

	endpoint := testEndpoint()
	req := wire.NewRequest()
	req.PathParams["id"] = "shared"

	const callers = 5
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			resp, err := coalesced.Execute(context.Background(), endpoint, req).Get(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.Code())
		}()
	}

	close(inner.release)
	wg.Wait()

	assert.Equal(t, int32(1), inner.calls.Load(), "concurrent identical calls should collapse into a single inner Execute")
}

func TestCoalescingChannelKeysByRequestContent(t *testing.T) {
	mock := channel.NewMockChannel()
	mock.StubResponse(200, "text/plain", "ok")

	coalesced := channel.NewCoalescingChannel(mock)
	endpoint := testEndpoint()

	reqA := wire.NewRequest()
	reqA.PathParams["id"] = "a"
	reqB := wire.NewRequest()
	reqB.PathParams["id"] = "b"

	_, err := coalesced.Execute(context.Background(), endpoint, reqA).Get(context.Background())
	require.NoError(t, err)
	_, err = coalesced.Execute(context.Background(), endpoint, reqB).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, mock.CallCount(), "distinct request content must not be coalesced together")
}
