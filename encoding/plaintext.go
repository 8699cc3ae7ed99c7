package encoding

import (
	"fmt"
	"io"
)

const plainTextContentType = "text/plain"

// PlainText is the text/plain Encoding: a byte passthrough for string
// and []byte values, used by endpoints whose body is raw text rather
// than a structured document.
var PlainText Encoding = plainTextEncoding{}

type plainTextEncoding struct{}

func (plainTextEncoding) ContentType() string { return plainTextContentType }

func (plainTextEncoding) SupportsContentType(mediaType string) bool {
	return mediaType == plainTextContentType
}

func (plainTextEncoding) NewEncoder() Encoder { return plainTextEncoder{} }
func (plainTextEncoding) NewDecoder() Decoder { return plainTextDecoder{} }

type plainTextEncoder struct{}

func (plainTextEncoder) Encode(w io.Writer, value any) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case fmt.Stringer:
		data = []byte(v.String())
	default:
		return fmt.Errorf("encoding: text/plain cannot encode %T", value)
	}
	_, err := w.Write(data)
	return err
}

type plainTextDecoder struct{}

func (plainTextDecoder) Decode(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	switch v := out.(type) {
	case *string:
		*v = string(data)
	case *[]byte:
		*v = data
	default:
		return fmt.Errorf("encoding: text/plain cannot decode into %T", out)
	}
	return nil
}
