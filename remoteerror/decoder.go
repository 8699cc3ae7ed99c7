package remoteerror

import (
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Response is the minimal surface Decode needs: status code,
// Content-Type lookup, and a single-consumer body stream. wire.Response
// satisfies this structurally; Decode is written against this local
// interface instead of importing the wire package, since wire's own
// dependency chain (via urlbuilder) would otherwise close a cycle
// back into remoteerror.
type Response interface {
	Code() int
	ContentType() (string, bool)
	Body() io.ReadCloser
}

// envelope is the wire shape of a decoded remote error, per the
// fixed JSON contract: errorCode, errorName, errorInstanceId, and a
// string-keyed parameters map.
type envelope struct {
	ErrorCode       string            `json:"errorCode"`
	ErrorName       string            `json:"errorName"`
	ErrorInstanceID string            `json:"errorInstanceId"`
	Parameters      map[string]string `json:"parameters"`
}

// Decode inspects resp and, for any status outside [200, 300), either
// returns a *RemoteError or a decoding failure describing why the
// body couldn't be interpreted as one. Decode must not be called for
// a successful (2xx) response; the transport/channel layer is
// responsible for only invoking it on the error path.
func Decode(resp Response) (*RemoteError, error) {
	status := resp.Code()

	contentType, present := resp.ContentType()
	if !present || mediaType(contentType) != "application/json" {
		return nil, WrapDeserializeFailure(
			fmt.Errorf("content-type %q", contentType),
			fmt.Sprintf("Failed to interpret response body as SerializableError: {code=%d}", status),
		)
	}

	body := resp.Body()
	var raw []byte
	if body != nil {
		defer body.Close()
		var err error
		raw, err = io.ReadAll(body)
		if err != nil {
			return nil, WrapDeserializeFailure(err, fmt.Sprintf("Failed to interpret response body as SerializableError: {code=%d}", status))
		}
	}
	if len(raw) == 0 {
		return nil, WrapDeserializeFailure(
			fmt.Errorf("empty body"),
			fmt.Sprintf("Failed to deserialize response body as JSON, could not deserialize SerializableError: {code=%d}", status),
		)
	}

	var env envelope
	if err := gojson.Unmarshal(raw, &env); err != nil {
		return nil, WrapDeserializeFailure(err, fmt.Sprintf("Failed to interpret response body as SerializableError: {code=%d}", status))
	}
	if env.ErrorCode == "" || env.ErrorName == "" {
		return nil, WrapDeserializeFailure(
			fmt.Errorf("missing required field in error envelope"),
			fmt.Sprintf("Failed to interpret response body as SerializableError: {code=%d}", status),
		)
	}

	return &RemoteError{
		Status:     status,
		Code:       env.ErrorCode,
		Name:       env.ErrorName,
		InstanceID: env.ErrorInstanceID,
		Parameters: env.Parameters,
	}, nil
}

// mediaType strips Content-Type parameters (e.g. `; charset=UTF-8`)
// and lower-cases the type/subtype, matching encoding.parseMediaType;
// duplicated here (rather than imported) to keep remoteerror free of
// a dependency on the encoding package.
func mediaType(contentType string) string {
	mt := contentType
	if idx := strings.IndexByte(mt, ';'); idx >= 0 {
		mt = mt[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
