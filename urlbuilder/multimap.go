package urlbuilder

// Multimap is an insertion-ordered string multimap, used for query
// parameters where key case must be preserved exactly as given (unlike
// http.Header, which canonicalizes keys — appropriate for headers but
// wrong for query parameter names).
type Multimap struct {
	order  []string
	values map[string][]string
}

// NewMultimap returns an empty Multimap.
func NewMultimap() *Multimap {
	return &Multimap{values: make(map[string][]string)}
}

// Add appends value under key, preserving insertion order both across
// keys and, for repeated keys, across values.
func (m *Multimap) Add(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Get returns all values added under key, in insertion order.
func (m *Multimap) Get(key string) []string {
	return m.values[key]
}

// Keys returns the distinct keys in first-insertion order.
func (m *Multimap) Keys() []string {
	return m.order
}

// Len returns the number of distinct keys.
func (m *Multimap) Len() int {
	return len(m.order)
}

// Each invokes fn once per (key, value) pair, in insertion order.
func (m *Multimap) Each(fn func(key, value string)) {
	for _, k := range m.order {
		for _, v := range m.values[k] {
			fn(k, v)
		}
	}
}
