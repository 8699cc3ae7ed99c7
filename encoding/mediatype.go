package encoding

import "strings"

// parseMediaType strips parameters (e.g. `; charset=UTF-8`) from a
// Content-Type header value and lower-cases the remaining type/subtype,
// per spec's "media-type equality is on the type/subtype portion,
// case-insensitive".
func parseMediaType(contentType string) string {
	mediaType := contentType
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
