package encoding

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// jsonContentType is the canonical media type JSON advertises and
// matches; sentinel-go's httpclient body codec uses the same library
// for request/response marshaling.
const jsonContentType = "application/json"

// JSON is the application/json Encoding, backed by goccy/go-json for
// parity with sentinel-go's existing body codec.
var JSON Encoding = jsonEncoding{}

type jsonEncoding struct{}

func (jsonEncoding) ContentType() string { return jsonContentType }

func (jsonEncoding) SupportsContentType(mediaType string) bool {
	return mediaType == jsonContentType
}

func (jsonEncoding) NewEncoder() Encoder { return jsonEncoder{} }
func (jsonEncoding) NewDecoder() Decoder { return jsonDecoder{} }

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, value any) error {
	return gojson.NewEncoder(w).Encode(value)
}

type jsonDecoder struct{}

func (jsonDecoder) Decode(r io.Reader, out any) error {
	return gojson.NewDecoder(r).Decode(out)
}
