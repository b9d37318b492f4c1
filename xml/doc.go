// Package xml is a streaming XML writer used by the document tree encoder.
//
// Encoder keeps a stack of open elements. A start tag stays open until the
// element receives content, so attributes and namespace declarations may be
// added right after StartElement. Every StartElement must be matched by an
// EndElement; an element closed without content is written self-closing.
//
// Names carry the namespace prefix, not the namespace URI. Declaring the
// prefix with NamespaceDecl is the caller's responsibility.
//
// When the encoder is created with an indent string, each child element is
// written on its own line and indented by its depth. Character data is never
// re-indented.
package xml
