// Package document provides the document tree exchanged between service
// handlers and the markup codec.
//
// A document tree Value is one of:
//
//   - nil, the null scalar
//   - bool
//   - string
//   - Sequence, an ordered list of values
//   - *Map, an insertion ordered, string keyed mapping of values
//
// Numbers are not a distinct scalar kind. Markup carries no numeric type, so
// numeric looking text stays a string at the leaf. FromInterface stringifies
// Go numbers when building a tree from native values.
//
// The package also bridges trees to and from JSON and YAML without losing key
// order, and supports JMESPath queries over a tree with Search.
package document
