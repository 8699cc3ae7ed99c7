package encoding_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/encoding"
	"github.com/kroma-labs/wire-go/remoteerror"
	"github.com/kroma-labs/wire-go/wire"
)

func responseWithBody(contentType string, body []byte) *wire.Response {
	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return wire.NewResponse(200, h, newRC(body))
}

func TestContentTypeMatch(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.JSON, encoding.PlainText)
	deserialize := encoding.Deserializer(bsd, encoding.Of[string]())

	got, err := deserialize(responseWithBody("text/plain", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = deserialize(responseWithBody("application/json", []byte(`"hello"`)))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestMissingContentType(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.JSON)
	deserialize := encoding.Deserializer(bsd, encoding.Of[string]())

	_, err := deserialize(responseWithBody("", []byte(`"hello"`)))
	require.Error(t, err)
	var invalidArg *remoteerror.InvalidArgument
	require.ErrorAs(t, err, &invalidArg)
	assert.Contains(t, err.Error(), "Response is missing Content-Type header")
}

func TestUnsupportedContentType(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.JSON)
	deserialize := encoding.Deserializer(bsd, encoding.Of[string]())

	_, err := deserialize(responseWithBody("application/unknown", []byte(`x`)))
	require.Error(t, err)
	var unsupported *remoteerror.UnsupportedMediaType
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "Unsupported Content-Type")
}

func TestDefaultEncodingOnSerialize(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.PlainText, encoding.JSON)
	serialize := encoding.Serializer(bsd, encoding.Of[string]())

	body, err := serialize("test")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", body.ContentType())
}

func TestCharsetParameterIgnoredOnMediaTypeMatch(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.JSON)
	deserialize := encoding.Deserializer(bsd, encoding.Of[string]())

	got, err := deserialize(responseWithBody("application/json; charset=UTF-8", []byte(`"hi"`)))
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestEmptyBodyDeserializerAcceptsEmpty(t *testing.T) {
	err := encoding.EmptyBodyDeserializer(responseWithBody("application/json", []byte{}))
	assert.NoError(t, err)
}

func TestEmptyBodyDeserializerRejectsNonEmpty(t *testing.T) {
	err := encoding.EmptyBodyDeserializer(responseWithBody("application/json", []byte("x")))
	require.Error(t, err)
	var violation *remoteerror.EmptyBodyViolation
	require.ErrorAs(t, err, &violation)
}

func TestSerializePreconditionOnNil(t *testing.T) {
	bsd := encoding.NewBodySerDe(encoding.JSON)
	serialize := encoding.Serializer(bsd, encoding.Of[*string]())

	_, err := serialize(nil)
	require.Error(t, err)
	var precondition *remoteerror.Precondition
	require.ErrorAs(t, err, &precondition)
}
