// Package xml is an xml testing package that supports xml comparison.
// SortXML rewrites a document with the attributes of every element sorted,
// and can drop whitespace used for indentation, so documents that differ only
// in attribute order or pretty printing compare equal. Element order is kept.
package xml
