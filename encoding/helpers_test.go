package encoding_test

import (
	"bytes"
	"io"
)

func newRC(data []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(data))
}
