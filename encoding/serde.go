package encoding

import (
	"bytes"
	"io"
	"reflect"

	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

// Serializer builds a reusable serialize function for T, bound to
// bsd's default Encoding. Generated stubs call this once per
// argument type and keep the returned function, the same way
// sentinel-go resolves a body codec once and reuses it across calls.
func Serializer[T any](bsd *BodySerDe, _ TypeMarker[T]) func(value T) (*wire.RequestBody, error) {
	enc := bsd.Default()
	return func(value T) (*wire.RequestBody, error) {
		if isNil(value) {
			return nil, remoteerror.NewPrecondition("value")
		}
		var buf bytes.Buffer
		if err := enc.NewEncoder().Encode(&buf, value); err != nil {
			return nil, remoteerror.WrapDeserializeFailure(err, "Failed to serialize request body")
		}
		return wire.NewBytesBody(enc.ContentType(), buf.Bytes()), nil
	}
}

// Deserializer builds a reusable deserialize function for T, bound
// to bsd's full registry so it can negotiate whichever Encoding a
// response actually used. Mirrors spec's 6-step
// deserializer(TypeMarker<T>).deserialize(response) algorithm.
func Deserializer[T any](bsd *BodySerDe, _ TypeMarker[T]) func(resp *wire.Response) (T, error) {
	return func(resp *wire.Response) (T, error) {
		var zero T

		contentType, present := resp.ContentType()
		if !present {
			return zero, remoteerror.NewInvalidArgument("Response is missing Content-Type header")
		}

		mediaType := parseMediaType(contentType)
		enc := bsd.find(mediaType)
		if enc == nil {
			return zero, &remoteerror.UnsupportedMediaType{ContentType: mediaType}
		}

		body := resp.Body()
		if body != nil {
			defer body.Close()
		}

		var out T
		if err := enc.NewDecoder().Decode(body, &out); err != nil {
			return zero, remoteerror.WrapDeserializeFailure(err, "Failed to deserialize response stream. Syntax error?")
		}
		return out, nil
	}
}

// EmptyBodyDeserializer reads up to one byte from resp's body: any
// byte present is a violation for a unit-returning endpoint. It
// ignores resp's Content-Type header entirely, per spec.
func EmptyBodyDeserializer(resp *wire.Response) error {
	body := resp.Body()
	if body == nil {
		return nil
	}
	defer body.Close()

	var b [1]byte
	n, err := body.Read(b[:])
	if n > 0 {
		return &remoteerror.EmptyBodyViolation{}
	}
	if err != nil && err != io.EOF {
		return remoteerror.WrapDeserializeFailure(err, "Failed to read response body")
	}
	return nil
}

// isNil reports whether a generic value is a nil pointer, interface,
// map, slice, chan, or func. Value types (structs, scalars) are never
// nil and report false.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
