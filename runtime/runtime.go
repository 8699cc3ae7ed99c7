// Package runtime bundles the frozen, shared pieces generated stubs
// consume: a BodySerDe, the stateless PlainSerDe codec, and an
// EmptyBodyDeserializer for unit-returning endpoints. A Runtime is
// built once per client and shared across every generated stub
// method, the same way sentinel-go/httpclient.Client is a frozen,
// functional-options-configured bundle shared across every call a
// caller makes through it.
package runtime

import (
	"github.com/kroma-labs/wire-go/encoding"
	"github.com/kroma-labs/wire-go/plainserde"
	"github.com/kroma-labs/wire-go/wire"
)

// Runtime is the frozen bundle generated stubs hold a reference to.
// It has no mutable state after New returns and is safe for
// concurrent use by every call a generated client makes.
type Runtime struct {
	bodySerDe *encoding.BodySerDe
	plainCodec plainserde.Codec
}

// Option configures a Runtime at construction time, following the
// functional-options pattern sentinel-go/httpclient.Options uses.
type Option func(*config)

type config struct {
	encodings []encoding.Encoding
}

// WithEncodings overrides the default Encoding preference order.
// Earlier encodings are preferred both as the default serialization
// encoding and in content-negotiated deserialization.
func WithEncodings(encodings ...encoding.Encoding) Option {
	return func(c *config) { c.encodings = encodings }
}

// New builds a Runtime. With no options, it registers encoding.JSON as
// the default followed by encoding.PlainText, matching wire-go's
// built-in Encoding set.
func New(opts ...Option) *Runtime {
	c := &config{encodings: []encoding.Encoding{encoding.JSON, encoding.PlainText}}
	for _, opt := range opts {
		opt(c)
	}
	return &Runtime{bodySerDe: encoding.NewBodySerDe(c.encodings...)}
}

// BodySerDe returns the Runtime's content-negotiating body codec.
func (r *Runtime) BodySerDe() *encoding.BodySerDe { return r.bodySerDe }

// PlainSerDe returns the Runtime's scalar path/header/query codec.
func (r *Runtime) PlainSerDe() plainserde.Codec { return r.plainCodec }

// EmptyBodyDeserializer returns the deserializer generated stubs use
// for unit-returning endpoints. It ignores Content-Type entirely and
// fails if the response body is non-empty.
func (r *Runtime) EmptyBodyDeserializer() func(resp *wire.Response) error {
	return encoding.EmptyBodyDeserializer
}
