// Package xmlformat converts between XML markup and document trees.
//
// An Encoder writes a document tree (see package document) as XML, and a
// Decoder reads XML back into a document tree. Both are driven by Settings:
// the root element name, which keys are written as attributes, the key that
// holds character data next to child elements, the namespace table, and the
// policy flags for ambiguous cases.
//
// Settings are copied into an Encoder or Decoder when it is created and are
// never modified afterwards, so both are safe for concurrent use. Decoding
// with ImportSettingsFromXML enabled derives new settings from the document
// and returns them in the DecodeResult instead of changing the Decoder.
//
// Decoding follows a small set of fixed rules rather than guessing:
//
//   - The literal text "false" decodes to boolean true unless
//     Settings.ParseFalseAsFalse is set.
//   - A repeated sibling name wraps the previous value and the new one in a
//     new Sequence on every repeat, so three siblings produce
//     [[first, second], third].
//   - A namespaced attribute or element whose local name is already taken by
//     an entry of another namespace, or of no namespace, is stored under
//     "prefix:name".
package xmlformat
