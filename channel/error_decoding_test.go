package channel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/channel"
	"github.com/kroma-labs/wire-go/remoteerror"
)

func TestErrorDecodingChannelPassesThroughSuccess(t *testing.T) {
	mock := channel.NewMockChannel().StubResponse(200, "application/json", `{"ok":true}`)
	decoding := channel.NewErrorDecodingChannel(mock)

	resp, err := decoding.Execute(context.Background(), testEndpoint(), nil).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
}

func TestErrorDecodingChannelDecodesFailure(t *testing.T) {
	mock := channel.NewMockChannel().StubResponse(500, "application/json",
		`{"errorCode":"FAILED_PRECONDITION","errorName":"Default:FailedPrecondition","errorInstanceId":"abc","parameters":{}}`)
	decoding := channel.NewErrorDecodingChannel(mock)

	_, err := decoding.Execute(context.Background(), testEndpoint(), nil).Get(context.Background())
	require.Error(t, err)
	var remoteErr *remoteerror.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 500, remoteErr.Status)
}
