package channel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/kroma-labs/wire-go/wire"
)

// MockChannel is a configurable Channel test double: stub a sequence
// of responses/errors and assert on invocation counts, without ever
// touching the network. Grounded on sentinel-go's MockTransport, with
// the same first-match-wins stub ordering and request recording.
type MockChannel struct {
	mu          sync.Mutex
	stubs       []mockStub
	defaultResp *wire.Response
	defaultErr  error
	calls       []mockCall
}

type mockStub struct {
	matcher func(wire.Endpoint, *wire.Request) bool
	resp    *wire.Response
	err     error
}

type mockCall struct {
	endpoint wire.Endpoint
	request  *wire.Request
}

// NewMockChannel returns an empty MockChannel with no stubs.
func NewMockChannel() *MockChannel {
	return &MockChannel{}
}

// StubResponse stubs every call to return a response with the given
// status, content type, and body.
func (m *MockChannel) StubResponse(status int, contentType string, body string) *MockChannel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResp = newMockResponse(status, contentType, body)
	return m
}

// StubError stubs every call to fail with err.
func (m *MockChannel) StubError(err error) *MockChannel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultErr = err
	return m
}

// StubSequence stubs successive calls to return the given
// results/errors in order; once exhausted, calls fall through to any
// default stub. Pass a nil error alongside a body for a success, or a
// non-nil error with an empty body for a failure.
func (m *MockChannel) StubSequence(results ...func() (*wire.Response, error)) *MockChannel {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range results {
		resp, err := r()
		m.stubs = append(m.stubs, mockStub{
			matcher: func(wire.Endpoint, *wire.Request) bool { return true },
			resp:    resp,
			err:     err,
		})
	}
	return m
}

// StubMethod stubs the next call whose endpoint method matches; the
// stub is consumed by that call, like a StubSequence entry.
func (m *MockChannel) StubMethod(method string, status int, contentType, body string) *MockChannel {
	resp := newMockResponse(status, contentType, body)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stubs = append(m.stubs, mockStub{
		matcher: func(ep wire.Endpoint, _ *wire.Request) bool { return ep.HTTPMethod() == method },
		resp:    resp,
	})
	return m
}

// CallCount returns the number of Execute invocations observed so far.
func (m *MockChannel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Execute implements Channel.
func (m *MockChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{endpoint: endpoint, request: request})

	for i, s := range m.stubs {
		if s.matcher(endpoint, request) {
			m.stubs = append(m.stubs[:i:i], m.stubs[i+1:]...)
			m.mu.Unlock()
			return Resolved(s.resp, s.err)
		}
	}
	resp, err := m.defaultResp, m.defaultErr
	m.mu.Unlock()

	if resp == nil && err == nil {
		err = fmt.Errorf("channel: no stub configured for %s %s", endpoint.HTTPMethod(), endpoint.Method)
	}
	return Resolved(resp, err)
}

func newMockResponse(status int, contentType, body string) *wire.Response {
	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return wire.NewResponse(status, h, io.NopCloser(strings.NewReader(body)))
}
