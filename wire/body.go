package wire

import (
	"bytes"
	"io"
)

// RequestBody is a content-typed byte source. When Reproducible reports
// true, Content may be called more than once — a RetryingChannel or
// HedgingChannel depends on that to replay the same body on a
// subsequent attempt, and rejects a body that is not reproducible.
type RequestBody struct {
	contentType  string
	open         func() (io.ReadCloser, error)
	length       int64
	hasLength    bool
	reproducible bool
}

// NewBytesBody builds a RequestBody backed by an in-memory byte slice.
// It is always reproducible and always reports its exact length.
func NewBytesBody(contentType string, data []byte) *RequestBody {
	return &RequestBody{
		contentType: contentType,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
		length:       int64(len(data)),
		hasLength:    true,
		reproducible: true,
	}
}

// NewStreamBody builds a RequestBody backed by an arbitrary opener
// function. Such bodies are not assumed reproducible unless
// reproducible is true — callers that know their opener can be invoked
// more than once (e.g. it reopens a file) should pass true.
func NewStreamBody(contentType string, open func() (io.ReadCloser, error), reproducible bool) *RequestBody {
	return &RequestBody{contentType: contentType, open: open, reproducible: reproducible}
}

// ContentType returns the body's content type.
func (b *RequestBody) ContentType() string { return b.contentType }

// Content opens a fresh readable stream over the body's bytes.
func (b *RequestBody) Content() (io.ReadCloser, error) { return b.open() }

// Length returns the body's byte count, if known.
func (b *RequestBody) Length() (int64, bool) { return b.length, b.hasLength }

// Reproducible reports whether Content can safely be called more than
// once, i.e. whether this body may be replayed by a retrying or hedging
// Channel.
func (b *RequestBody) Reproducible() bool { return b.reproducible }
