package remoteerror

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// Precondition signals a null/absent required argument or a missing
// path-template variable. It always carries the offending parameter
// name so callers (and generated stubs) can report it directly.
type Precondition struct {
	Parameter string
	cause     error
}

// NewPrecondition builds a Precondition for the named parameter.
func NewPrecondition(parameter string) *Precondition {
	return &Precondition{Parameter: parameter}
}

func (e *Precondition) Error() string {
	return fmt.Sprintf("precondition failed: missing required parameter %q", e.Parameter)
}

func (e *Precondition) Unwrap() error { return e.cause }

// InvalidArgument signals an argument out of its declared range, or a
// response that cannot be interpreted (e.g. missing Content-Type).
type InvalidArgument struct {
	Message string
	cause   error
}

// NewInvalidArgument builds an InvalidArgument with the given message.
func NewInvalidArgument(message string) *InvalidArgument {
	return &InvalidArgument{Message: message}
}

// WrapInvalidArgument builds an InvalidArgument that wraps cause.
func WrapInvalidArgument(cause error, message string) *InvalidArgument {
	return &InvalidArgument{Message: message, cause: errors.Wrap(cause, message)}
}

func (e *InvalidArgument) Error() string { return e.Message }
func (e *InvalidArgument) Unwrap() error { return e.cause }

// UnsupportedMediaType signals a response Content-Type that no
// registered Encoding claims.
type UnsupportedMediaType struct {
	ContentType string
}

func (e *UnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported Content-Type: %s", e.ContentType)
}

// DeserializeFailure signals a malformed response body for the
// negotiated Content-Type. The underlying parse error is preserved via
// Unwrap.
type DeserializeFailure struct {
	Message string
	cause   error
}

// WrapDeserializeFailure builds a DeserializeFailure wrapping cause.
func WrapDeserializeFailure(cause error, message string) *DeserializeFailure {
	return &DeserializeFailure{Message: message, cause: errors.Wrap(cause, message)}
}

func (e *DeserializeFailure) Error() string { return e.Message }
func (e *DeserializeFailure) Unwrap() error { return e.cause }

// EmptyBodyViolation signals a non-empty body on a unit-returning
// endpoint.
type EmptyBodyViolation struct{}

func (e *EmptyBodyViolation) Error() string { return "Expected empty response body" }

// Transport signals a connection-level failure (refused, reset, TLS
// handshake failure) surfaced by a Channel's Future.
type Transport struct {
	cause error
}

// WrapTransport builds a Transport error wrapping cause.
func WrapTransport(cause error) *Transport {
	return &Transport{cause: errors.Wrap(cause, "transport failure")}
}

func (e *Transport) Error() string { return e.cause.Error() }
func (e *Transport) Unwrap() error { return e.cause }

// Timeout signals that a blocking stub exceeded its deadline. It does
// not imply the underlying call was cancelled.
type Timeout struct {
	Waited time.Duration
	cause  error
}

// WrapTimeout builds a Timeout error for the given wait duration.
func WrapTimeout(waited time.Duration, cause error) *Timeout {
	return &Timeout{Waited: waited, cause: errors.Wrap(cause, "timeout")}
}

func (e *Timeout) Error() string {
	return fmt.Sprintf("Waited %d milliseconds", e.Waited.Milliseconds())
}

func (e *Timeout) Unwrap() error { return e.cause }
