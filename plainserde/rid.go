package plainserde

import (
	"regexp"

	"github.com/kroma-labs/wire-go/remoteerror"
)

// ResourceIdentifier is an opaque structured string of the form
// "ri.<service>.<instance>.<type>.<locator>". wire-go performs no
// transformation on it beyond validating the shape.
type ResourceIdentifier string

var ridPattern = regexp.MustCompile(`^ri\.[a-z][a-z0-9\-]*\.[a-z0-9\-]*\.[a-z][a-z0-9\-]*\.[a-zA-Z0-9_\-\.]+$`)

// EncodeRID validates and returns the RID's string form unchanged.
func EncodeRID(v ResourceIdentifier) (string, error) {
	if !ridPattern.MatchString(string(v)) {
		return "", remoteerror.NewInvalidArgument("invalid resource identifier: " + string(v))
	}
	return string(v), nil
}

// DecodeRID validates and wraps s as a ResourceIdentifier.
func DecodeRID(s string) (ResourceIdentifier, error) {
	if !ridPattern.MatchString(s) {
		return "", remoteerror.NewInvalidArgument("invalid resource identifier: " + s)
	}
	return ResourceIdentifier(s), nil
}
