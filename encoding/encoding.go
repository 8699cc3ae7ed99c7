package encoding

import "io"

// Encoder writes a single value as a byte stream in its Encoding's
// wire format.
type Encoder interface {
	Encode(w io.Writer, value any) error
}

// Decoder reads a single value from a byte stream in its Encoding's
// wire format.
type Decoder interface {
	Decode(r io.Reader, out any) error
}

// Encoding is a content-type-scoped codec plugin. Registered Encodings
// are consulted in preference order by a BodySerDe; the first one
// whose SupportsContentType matches a response's media type performs
// the deserialize.
type Encoding interface {
	// ContentType is this Encoding's canonical, preferred media type,
	// used to label request bodies this Encoding serializes.
	ContentType() string

	// SupportsContentType reports whether mediaType (already stripped
	// of parameters such as charset, already lower-cased) is handled
	// by this Encoding. Distinct from ContentType to let an Encoding
	// accept a family of related media types.
	SupportsContentType(mediaType string) bool

	NewEncoder() Encoder
	NewDecoder() Decoder
}

// TypeMarker is a zero-size witness that carries a result/argument
// type T at the call site, standing in for spec's generic
// TypeMarker<T> methods, which Go cannot express directly (Go forbids
// type parameters on methods). Generated stubs write `encoding.Of[T]()`
// once per type and pass the marker to Serializer/Deserializer.
type TypeMarker[T any] struct{}

// Of builds a TypeMarker for T.
func Of[T any]() TypeMarker[T] { return TypeMarker[T]{} }
