// Package encoding provides the Encoding plugin contract and the
// BodySerDe registry that performs content negotiation over it.
//
// An Encoding owns a content type plus a pair of byte-level codecs; a
// BodySerDe holds an ordered, linearly-searched list of Encodings and
// offers generic Serializer/Deserializer helpers that generated stubs
// call once per argument/result type, the same way sentinel-go's body
// codec is resolved once per request in httpclient/client.go.
package encoding
