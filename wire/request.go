package wire

import (
	"net/http"

	"github.com/kroma-labs/wire-go/urlbuilder"
)

// Request is the immutable description of a single RPC call built by a
// generated stub and consumed by a channel.Channel. All keys and values
// are already-encoded strings; a Channel never re-interprets them.
type Request struct {
	// PathParams fills an Endpoint's path template variables.
	PathParams map[string]string

	// Header holds request headers; Go's http.Header already compares
	// keys case-insensitively on Set/Get/Add, matching spec.md §3's
	// "header keys compared case-insensitively at wire level".
	Header http.Header

	// Query holds query parameters; unlike Header, query parameter
	// names are not case-folded, so this uses urlbuilder.Multimap
	// instead of http.Header.
	Query *urlbuilder.Multimap

	// Body is the optional request body.
	Body *RequestBody
}

// NewRequest returns an empty, ready-to-populate Request.
func NewRequest() *Request {
	return &Request{
		PathParams: make(map[string]string),
		Header:     make(http.Header),
		Query:      urlbuilder.NewMultimap(),
	}
}
