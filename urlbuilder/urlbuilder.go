package urlbuilder

import (
	"fmt"
	"net/url"
	"strings"
)

// pathUnreserved is RFC 3986's unreserved set, passed through
// untouched in path segments; everything else is percent-encoded.
const pathUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// queryUnreserved keeps '*' unescaped and, unlike pathUnreserved,
// percent-encodes '~', matching the
// application/x-www-form-urlencoded variant spec.md §4.1 calls for.
const queryUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._*"

// Builder accumulates a scheme, host, port, an ordered list of path
// segments, and a query Multimap for a single request. It is mutable
// and scoped to one request's construction; discard it once String has
// been called.
type Builder struct {
	scheme   string
	host     string
	port     string
	segments []string
	query    *Multimap
}

// New creates a Builder seeded from baseURL (typically a Channel's
// configured base URL, e.g. "https://api.example.com").
func New(baseURL string) *Builder {
	u, err := url.Parse(baseURL)
	if err != nil {
		// An invalid base URL is a construction-time configuration
		// error, not a per-request one; callers validate baseURL once
		// when building their Channel.
		return &Builder{scheme: "http", host: baseURL, query: NewMultimap()}
	}

	b := &Builder{
		scheme: u.Scheme,
		host:   u.Hostname(),
		port:   u.Port(),
		query:  NewMultimap(),
	}

	for _, seg := range strings.Split(strings.Trim(u.EscapedPath(), "/"), "/") {
		if seg != "" {
			b.segments = append(b.segments, seg)
		}
	}
	return b
}

// Segment appends one already-decoded path segment, percent-encoding
// it per RFC 3986's path rules.
func (b *Builder) Segment(raw string) *Builder {
	b.segments = append(b.segments, percentEncode(raw, pathUnreserved))
	return b
}

// Query adds one query parameter, percent-encoding key and value per
// the application/x-www-form-urlencoded variant described in spec.md
// §4.1. Multiple calls with the same key append additional values.
func (b *Builder) Query(key, value string) *Builder {
	b.query.Add(percentEncode(key, queryUnreserved), percentEncode(value, queryUnreserved))
	return b
}

// String renders the accumulated state to a full URL:
// scheme://host[:port]/segments[?queries]. Port is omitted when it
// matches the scheme's default.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.scheme)
	sb.WriteString("://")
	sb.WriteString(b.host)

	if b.port != "" && !isDefaultPort(b.scheme, b.port) {
		sb.WriteByte(':')
		sb.WriteString(b.port)
	}

	for _, seg := range b.segments {
		sb.WriteByte('/')
		sb.WriteString(seg)
	}

	if b.query.Len() > 0 {
		sb.WriteByte('?')
		first := true
		b.query.Each(func(k, v string) {
			if !first {
				sb.WriteByte('&')
			}
			first = false
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(v)
		})
	}

	return sb.String()
}

func isDefaultPort(scheme, port string) bool {
	switch scheme {
	case "http":
		return port == "80"
	case "https":
		return port == "443"
	default:
		return false
	}
}

func percentEncode(s string, safe string) string {
	needsEncoding := false
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(safe, rune(s[i])) {
			needsEncoding = true
			break
		}
	}
	if !needsEncoding {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.ContainsRune(safe, rune(c)) {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String()
}
