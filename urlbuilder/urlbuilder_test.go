package urlbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroma-labs/wire-go/urlbuilder"
)

func TestPathTemplateFill(t *testing.T) {
	tmpl := urlbuilder.NewTemplateBuilder().
		Fixed("a").
		Variable("b").
		Build()

	b := urlbuilder.New("https://example.com")
	require.NoError(t, tmpl.Fill(map[string]string{"b": "x"}, b))
	assert.Equal(t, "https://example.com/a/x", b.String())
}

func TestPathTemplateMissingVariable(t *testing.T) {
	tmpl := urlbuilder.NewTemplateBuilder().
		Fixed("a").
		Variable("b").
		Build()

	b := urlbuilder.New("https://example.com")
	err := tmpl.Fill(map[string]string{}, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b")
}

func TestSegmentPercentEncoding(t *testing.T) {
	b := urlbuilder.New("https://example.com")
	b.Segment("a b/c")
	assert.Equal(t, "https://example.com/a%20b%2Fc", b.String())
}

func TestQueryMultiplicityPreservesOrder(t *testing.T) {
	b := urlbuilder.New("https://example.com")
	b.Segment("search")
	b.Query("tag", "go")
	b.Query("tag", "rpc")
	assert.Equal(t, "https://example.com/search?tag=go&tag=rpc", b.String())
}

func TestQueryKeepsStarDotDashUnderscoreUnescaped(t *testing.T) {
	b := urlbuilder.New("https://example.com")
	b.Query("q", "a*b-c.d_e")
	assert.Equal(t, "https://example.com?q=a*b-c.d_e", b.String())
}

func TestDefaultPortOmitted(t *testing.T) {
	b := urlbuilder.New("https://example.com:443")
	assert.Equal(t, "https://example.com", b.String())

	b2 := urlbuilder.New("http://example.com:80")
	assert.Equal(t, "http://example.com", b2.String())
}

func TestNonDefaultPortKept(t *testing.T) {
	b := urlbuilder.New("https://example.com:8443")
	assert.Equal(t, "https://example.com:8443", b.String())
}
