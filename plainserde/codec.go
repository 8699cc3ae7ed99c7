package plainserde

import (
	"time"

	"github.com/google/uuid"
)

// Codec is a stateless zero-size value exposing the package's
// Encode*/Decode* functions as methods, for parity with spec.md's
// data model table, which describes PlainSerDe as a single codec
// object rather than a bag of free functions. Generated stubs may use
// either form; a Runtime hands out a Codec value for callers that
// prefer the method-call shape.
type Codec struct{}

func (Codec) EncodeString(v string) string            { return EncodeString(v) }
func (Codec) DecodeString(s string) (string, error)    { return DecodeString(s) }
func (Codec) EncodeInteger(v int32) string             { return EncodeInteger(v) }
func (Codec) DecodeInteger(s string) (int32, error)    { return DecodeInteger(s) }
func (Codec) EncodeSafeLong(v int64) (string, error)   { return EncodeSafeLong(v) }
func (Codec) DecodeSafeLong(s string) (int64, error)   { return DecodeSafeLong(s) }
func (Codec) EncodeDouble(v float64) (string, error)   { return EncodeDouble(v) }
func (Codec) DecodeDouble(s string) (float64, error)   { return DecodeDouble(s) }
func (Codec) EncodeBoolean(v bool) string              { return EncodeBoolean(v) }
func (Codec) DecodeBoolean(s string) (bool, error)     { return DecodeBoolean(s) }
func (Codec) EncodeDateTime(t time.Time) string        { return EncodeDateTime(t) }
func (Codec) DecodeDateTime(s string) (time.Time, error) { return DecodeDateTime(s) }
func (Codec) EncodeUUID(v uuid.UUID) string            { return EncodeUUID(v) }
func (Codec) DecodeUUID(s string) (uuid.UUID, error)   { return DecodeUUID(s) }
func (Codec) EncodeBinary(v []byte) string             { return EncodeBinary(v) }
func (Codec) DecodeBinary(s string) ([]byte, error)    { return DecodeBinary(s) }
func (Codec) EncodeRID(v ResourceIdentifier) (string, error) { return EncodeRID(v) }
func (Codec) DecodeRID(s string) (ResourceIdentifier, error) { return DecodeRID(s) }
