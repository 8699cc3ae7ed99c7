// Package remoteerror defines the failure taxonomy surfaced by every
// layer of the wire-go runtime (urlbuilder, plainserde, encoding,
// channel, runtime) and the structured remote-error envelope produced
// by a server-side failure.
//
// Every exported error type implements error and wraps its underlying
// cause (if any) with github.com/cockroachdb/errors, so callers can use
// errors.As/errors.Is through a full decorator chain — e.g. to recover
// the original net.Error beneath a BackoffChannel wrapping a
// RetryingChannel wrapping the transport channel.
package remoteerror
