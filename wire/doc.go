// Package wire holds the immutable value types that describe a single
// RPC exchange at the runtime boundary: Endpoint, Request, RequestBody,
// and Response. Generated stubs build a Request and pass it, together
// with the Endpoint that names it, to a channel.Channel; the transport
// channel turns that pair into an HTTP call and back into a Response.
package wire
