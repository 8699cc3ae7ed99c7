package wire

import "github.com/kroma-labs/wire-go/urlbuilder"

// Endpoint is a statically known method descriptor: an HTTP method plus
// a path template. Generated stubs construct one Endpoint per IDL
// method, once, as a package-level variable; Endpoints are immutable
// and safe to share across concurrent calls.
type Endpoint struct {
	Method   string
	template *urlbuilder.PathTemplate
}

// NewEndpoint builds an Endpoint for method (e.g. http.MethodGet) and
// the given path template.
func NewEndpoint(method string, template *urlbuilder.PathTemplate) Endpoint {
	return Endpoint{Method: method, template: template}
}

// HTTPMethod returns the endpoint's HTTP method.
func (e Endpoint) HTTPMethod() string { return e.Method }

// RenderPath fills e's path template into b using params, in template
// order. A missing path variable surfaces as a *remoteerror.Precondition.
func (e Endpoint) RenderPath(params map[string]string, b *urlbuilder.Builder) error {
	return e.template.Fill(params, b)
}
