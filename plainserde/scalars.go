package plainserde

import (
	"encoding/base64"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kroma-labs/wire-go/remoteerror"
)

// maxSafeLong and minSafeLong bound the safelong domain, ±(2^53−1) —
// the largest integer range a JSON double can represent exactly. An
// encoding/json float64 round trip silently loses precision past this
// point, which is exactly the failure mode safelong guards against.
const (
	maxSafeLong int64 = 1<<53 - 1
	minSafeLong int64 = -(1<<53 - 1)
)

// EncodeString is the identity encoding.
func EncodeString(v string) string { return v }

// DecodeString is the identity decoding.
func DecodeString(s string) (string, error) { return s, nil }

// EncodeInteger renders a signed 32-bit integer as decimal.
func EncodeInteger(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// DecodeInteger parses a signed 32-bit decimal integer.
func DecodeInteger(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, remoteerror.WrapInvalidArgument(err, "invalid integer: "+s)
	}
	return int32(n), nil
}

// EncodeSafeLong renders a safelong, rejecting values outside
// ±(2^53−1).
func EncodeSafeLong(v int64) (string, error) {
	if v > maxSafeLong || v < minSafeLong {
		return "", remoteerror.NewInvalidArgument("safelong out of range: " + strconv.FormatInt(v, 10))
	}
	return strconv.FormatInt(v, 10), nil
}

// DecodeSafeLong parses a safelong, rejecting values outside
// ±(2^53−1).
func DecodeSafeLong(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, remoteerror.WrapInvalidArgument(err, "invalid safelong: "+s)
	}
	if n > maxSafeLong || n < minSafeLong {
		return 0, remoteerror.NewInvalidArgument("safelong out of range: " + s)
	}
	return n, nil
}

// EncodeDouble renders the shortest decimal that round-trips back to
// v. NaN and ±Infinity are rejected, matching spec.md §4.2.
func EncodeDouble(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", remoteerror.NewInvalidArgument("double must be finite, got " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

// DecodeDouble parses an IEEE-754 textual double.
func DecodeDouble(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, remoteerror.WrapInvalidArgument(err, "invalid double: "+s)
	}
	return f, nil
}

// EncodeBoolean renders "true" or "false".
func EncodeBoolean(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// DecodeBoolean parses "true" or "false" (lowercase only).
func DecodeBoolean(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, remoteerror.NewInvalidArgument("invalid boolean: " + s)
	}
}

// dateTimeLayout is RFC 3339 with fractional seconds, normalized to
// "Z" when the offset is UTC.
const dateTimeLayout = time.RFC3339Nano

// EncodeDateTime renders t as ISO-8601 extended, normalized to UTC.
func EncodeDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

// DecodeDateTime parses an ISO-8601 timestamp with any offset.
func DecodeDateTime(s string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, remoteerror.WrapInvalidArgument(err, "invalid date-time: "+s)
	}
	return t, nil
}

// EncodeUUID renders the canonical lowercase 8-4-4-4-12 hex form.
func EncodeUUID(v uuid.UUID) string { return v.String() }

// DecodeUUID parses a canonical UUID string.
func DecodeUUID(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, remoteerror.WrapInvalidArgument(err, "invalid uuid: "+s)
	}
	return u, nil
}

// EncodeBinary base64-encodes bytes.
func EncodeBinary(v []byte) string {
	return base64.StdEncoding.EncodeToString(v)
}

// DecodeBinary base64-decodes a string.
func DecodeBinary(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, remoteerror.WrapInvalidArgument(err, "invalid binary: "+s)
	}
	return b, nil
}
