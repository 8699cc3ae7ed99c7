package channel

import (
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/urlbuilder"
	"github.com/kroma-labs/wire-go/wire"
)

// httpTransportChannel is the innermost Channel: it turns an Endpoint
// and Request into a real HTTP call and back into a wire.Response. It
// never retries and never decodes non-2xx statuses into errors — both
// are the job of decorator Channels further out, mirroring
// sentinel-go's base *http.Transport sitting under all its
// instrumented RoundTrippers.
type httpTransportChannel struct {
	baseURL string
	client  *http.Client
}

// NewTransportChannel builds the innermost Channel, issuing requests
// against baseURL via client. A nil client uses http.DefaultClient.
func NewTransportChannel(baseURL string, client *http.Client) Channel {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransportChannel{baseURL: baseURL, client: client}
}

func (c *httpTransportChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		return c.do(ctx, endpoint, request)
	})
}

func (c *httpTransportChannel) do(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) (*wire.Response, error) {
	// Step 1-2: seed a fresh UrlBuilder with the base URL and render
	// the endpoint's path template.
	builder := urlbuilder.New(c.baseURL)
	if err := endpoint.RenderPath(request.PathParams, builder); err != nil {
		return nil, err
	}

	// Step 3: copy query params, preserving multiplicity and order.
	if request.Query != nil {
		request.Query.Each(func(key, value string) {
			builder.Query(key, value)
		})
	}

	// Step 4: HTTP method from the endpoint.
	method := endpoint.HTTPMethod()

	// Step 5: body, or an empty body with no Content-Type.
	var bodyReader io.ReadCloser
	var contentLength int64 = -1
	if request.Body != nil {
		content, err := request.Body.Content()
		if err != nil {
			return nil, remoteerror.WrapTransport(err)
		}
		bodyReader = content
		if length, ok := request.Body.Length(); ok {
			contentLength = length
		}
	}

	var bodyArg io.Reader
	if bodyReader != nil {
		bodyArg = bodyReader
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, builder.String(), bodyArg)
	if err != nil {
		return nil, remoteerror.WrapTransport(err)
	}
	if contentLength >= 0 {
		httpReq.ContentLength = contentLength
	}

	// Step 6: headers, verbatim, then Content-Type if a body is present.
	for key, values := range request.Header {
		httpReq.Header[key] = append(httpReq.Header[key], values...)
	}
	if request.Body != nil {
		httpReq.Header.Set("Content-Type", request.Body.ContentType())
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, remoteerror.WrapTransport(errors.Wrap(err, "http transport"))
	}

	return wire.NewResponse(httpResp.StatusCode, httpResp.Header, httpResp.Body), nil
}
