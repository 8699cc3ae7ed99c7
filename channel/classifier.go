package channel

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/kroma-labs/wire-go/wire"
)

// RetryClassifier decides whether a completed attempt (response, or
// error if the future failed) represents a transient failure worth
// retrying. Grounded on sentinel-go's RetryClassifier/DefaultClassifier.
type RetryClassifier func(resp *wire.Response, err error) bool

// DefaultClassifier retries on 429/502/503/504 and on network errors
// that look transient (timeouts, connection resets); it does not
// retry context cancellation, TLS/DNS permanent failures, or any
// other 4xx/5xx status.
func DefaultClassifier(resp *wire.Response, err error) bool {
	if err == nil {
		if resp == nil {
			return false
		}
		switch resp.StatusCode {
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if isPermanentError(err) {
		return false
	}
	return isRetryableNetworkError(err)
}

func isRetryableNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	if errors.Is(err, io.EOF) {
		return true
	}

	return containsAny(err.Error(), "connection refused", "connection reset", "i/o timeout", "broken pipe")
}

func isPermanentError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return true
	}
	if errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EHOSTDOWN) {
		return true
	}
	return containsAny(err.Error(), "x509:", "certificate", "tls:", "no route to host", "permission denied")
}

func containsAny(s string, patterns ...string) bool {
	lower := strings.ToLower(s)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// classifiedFailure marks a completed attempt that RetryClassifier
// judged retryable or not, so an outer BackoffChannel knows whether to
// spend another attempt on it.
type classifiedFailure struct {
	retryable bool
	cause     error
}

func (e *classifiedFailure) Error() string { return e.cause.Error() }
func (e *classifiedFailure) Unwrap() error { return e.cause }

// classifyingChannel converts a successful-but-retryable response
// (e.g. a 503) into a classified failure that an outer BackoffChannel
// retries, and tags any transport-level failure with whether the
// classifier considers it retryable at all. Responses the classifier
// does not flag (successes, and statuses such as a plain 4xx or 500)
// pass through unchanged; transport-level failures are always wrapped,
// with retryable set to false when the classifier rejects them.
type classifyingChannel struct {
	inner      Channel
	classifier RetryClassifier
}

// NewClassifyingChannel wraps inner so failures/responses are judged
// by classifier before reaching an outer retry/backoff decorator.
// Compose as channel.NewBackoffChannel(channel.NewClassifyingChannel(inner, classifier), ...)
// so backoff only paces and re-attempts transient failures.
func NewClassifyingChannel(inner Channel, classifier RetryClassifier) Channel {
	if classifier == nil {
		classifier = DefaultClassifier
	}
	return &classifyingChannel{inner: inner, classifier: classifier}
}

func (c *classifyingChannel) Execute(ctx context.Context, endpoint wire.Endpoint, request *wire.Request) *Future {
	return Run(ctx, func(ctx context.Context) (*wire.Response, error) {
		resp, err := c.inner.Execute(ctx, endpoint, request).Get(ctx)
		if err != nil {
			return nil, &classifiedFailure{retryable: c.classifier(nil, err), cause: err}
		}
		if c.classifier(resp, nil) {
			return nil, &classifiedFailure{retryable: true, cause: errorForStatus(resp)}
		}
		return resp, nil
	})
}

func errorForStatus(resp *wire.Response) error {
	return &httpStatusError{status: resp.StatusCode}
}

type httpStatusError struct{ status int }

func (e *httpStatusError) Error() string {
	return http.StatusText(e.status)
}
