// Package channel implements the runtime's single composition seam:
// Channel, whose one operation Execute(Endpoint, Request) returns a
// Future[*wire.Response]. Every cross-cutting concern — retrying,
// backoff, circuit breaking, tracing, rate limiting, deduplication,
// hedging, debug logging — is a decorator that wraps an inner Channel
// and returns another Channel, the same way sentinel-go/httpclient
// nests http.RoundTrippers. Decorators compose by construction order:
// the outermost Channel is the first one a caller's Execute call
// enters and the last one whose post-processing runs before the
// result reaches the caller.
package channel
