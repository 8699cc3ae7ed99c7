package wire

import (
	"io"
	"net/http"
)

// Response is produced by a transport channel and owned by its caller.
// Its body is a single-consumer stream: whichever of {ErrorDecoder,
// Deserializer, discard-on-success-path} reads it first is responsible
// for closing it.
type Response struct {
	StatusCode int
	Header     http.Header
	body       io.ReadCloser
}

// NewResponse wraps a status code, header set, and body stream as a
// Response.
func NewResponse(statusCode int, header http.Header, body io.ReadCloser) *Response {
	if header == nil {
		header = make(http.Header)
	}
	return &Response{StatusCode: statusCode, Header: header, body: body}
}

// Code returns the transport-layer HTTP status code.
func (r *Response) Code() int { return r.StatusCode }

// ContentType returns the Content-Type header's value, if present.
func (r *Response) ContentType() (string, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", false
	}
	return ct, true
}

// Body returns the response's single-consumer byte stream. Callers
// that read it are responsible for closing it.
func (r *Response) Body() io.ReadCloser { return r.body }

// Close closes the underlying body, if any. Safe to call even if the
// body was never read.
func (r *Response) Close() error {
	if r.body == nil {
		return nil
	}
	return r.body.Close()
}

// IsSuccess reports whether the status code is in [200, 300).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
