// Package plainserde codecs the IDL's atomic scalar types to and from
// the plain strings carried in path segments, headers, and query
// parameters.
//
// Every scalar gets a total Encode/Decode function pair; List, Set, and
// Optional are lifted element-wise by generic helpers rather than by a
// dedicated type per combination (string list, int optional, ...),
// which is the Go-idiomatic reading of spec.md §4.2's "list/set/optional:
// applied element-wise".
package plainserde
