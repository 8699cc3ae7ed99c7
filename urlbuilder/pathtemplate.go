package urlbuilder

import "github.com/kroma-labs/wire-go/remoteerror"

// segment is one element of a PathTemplate: either a fixed literal or a
// named variable filled in at render time.
type segment struct {
	literal  string
	variable string
	isVar    bool
}

// PathTemplate is an ordered sequence of fixed and variable path
// segments. It is built once per Endpoint (via TemplateBuilder) and is
// immutable and safe for concurrent use thereafter.
type PathTemplate struct {
	segments []segment
}

// TemplateBuilder accumulates segments in template order.
type TemplateBuilder struct {
	segments []segment
}

// NewTemplateBuilder starts a new, empty path template.
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{}
}

// Fixed appends a literal path segment.
func (b *TemplateBuilder) Fixed(literal string) *TemplateBuilder {
	b.segments = append(b.segments, segment{literal: literal})
	return b
}

// Variable appends a named variable segment. name must be unique across
// the template; Build panics on a duplicate, since that is a
// programmer/codegen error rather than a runtime condition.
func (b *TemplateBuilder) Variable(name string) *TemplateBuilder {
	b.segments = append(b.segments, segment{variable: name, isVar: true})
	return b
}

// Build finalizes the template.
func (b *TemplateBuilder) Build() *PathTemplate {
	seen := make(map[string]struct{}, len(b.segments))
	for _, s := range b.segments {
		if !s.isVar {
			continue
		}
		if _, ok := seen[s.variable]; ok {
			panic("urlbuilder: duplicate path variable name " + s.variable)
		}
		seen[s.variable] = struct{}{}
	}
	return &PathTemplate{segments: append([]segment(nil), b.segments...)}
}

// Fill renders the template into b in order, looking up each variable
// segment's value in params. A variable absent from params is a
// Precondition violation carrying that variable's name.
func (t *PathTemplate) Fill(params map[string]string, b *Builder) error {
	for _, s := range t.segments {
		if !s.isVar {
			b.Segment(s.literal)
			continue
		}
		v, ok := params[s.variable]
		if !ok {
			return remoteerror.NewPrecondition(s.variable)
		}
		b.Segment(v)
	}
	return nil
}
