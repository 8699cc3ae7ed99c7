// Package urlbuilder builds RFC 3986-encoded request URLs from a base
// URL, an ordered path template of fixed and variable segments, and a
// multi-valued query parameter set.
//
// A Builder is scoped to a single request: create one from a base URL,
// fill in the path via a PathTemplate, add query parameters, then call
// String to get the final URL.
//
//	tmpl := urlbuilder.NewTemplateBuilder().
//	    Fixed("users").
//	    Variable("id").
//	    Build()
//
//	b := urlbuilder.New("https://api.example.com")
//	if err := tmpl.Fill(map[string]string{"id": "42"}, b); err != nil {
//	    return err
//	}
//	b.Query("verbose", "true")
//	url := b.String() // https://api.example.com/users/42?verbose=true
package urlbuilder
