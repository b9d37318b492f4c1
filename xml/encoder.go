package xml

import (
	"bytes"
	"fmt"
	"strings"
)

// Header is the XML declaration written by WriteHeader.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// Indent is written once per nesting level before each child element.
	// Empty disables pretty printing.
	Indent string
}

// openElement tracks an element whose end tag has not been written.
type openElement struct {
	name        Name
	hasContent  bool
	hasChildren bool
}

// Encoder is a streaming XML writer.
type Encoder struct {
	w       *bytes.Buffer
	options EncoderOptions

	stack []openElement

	// tagOpen is set while the most recent start tag awaits its closing '>'.
	tagOpen bool
}

// NewEncoder returns an XML encoder
func NewEncoder(optFns ...func(*EncoderOptions)) *Encoder {
	var o EncoderOptions
	for _, fn := range optFns {
		fn(&o)
	}

	return &Encoder{w: bytes.NewBuffer(nil), options: o}
}

// WriteHeader writes the XML declaration followed by a newline. It must be
// called before the root element is started.
func (e *Encoder) WriteHeader() error {
	if e.w.Len() != 0 {
		return fmt.Errorf("xml header must be written first")
	}
	e.w.WriteString(Header)
	e.w.WriteByte('\n')
	return nil
}

// StartElement opens a new element. Its start tag is kept open so attributes
// may follow.
func (e *Encoder) StartElement(name Name) error {
	if name.isZero() {
		return fmt.Errorf("xml start element cannot be nil")
	}

	e.closeStartTag()
	if n := len(e.stack); n > 0 {
		parent := &e.stack[n-1]
		parent.hasContent = true
		parent.hasChildren = true
		e.writeIndent(n)
	}

	e.w.WriteByte('<')
	e.w.WriteString(name.String())
	e.stack = append(e.stack, openElement{name: name})
	e.tagOpen = true
	return nil
}

// Attribute adds an attribute to the element that was just started. It fails
// once the element has received content.
func (e *Encoder) Attribute(name Name, value string) error {
	if !e.tagOpen {
		return fmt.Errorf("xml attribute %s written outside of a start tag", name)
	}
	if name.isZero() {
		return fmt.Errorf("xml attribute name cannot be empty")
	}

	e.w.WriteByte(' ')
	e.w.WriteString(name.String())
	e.w.WriteString(`="`)
	escapeAttr(e.w, value)
	e.w.WriteByte('"')
	return nil
}

// NamespaceDecl declares prefix as bound to uri on the element that was just
// started.
// https://www.w3.org/TR/REC-xml-names/#NT-PrefixedAttName
func (e *Encoder) NamespaceDecl(prefix, uri string) error {
	if len(prefix) == 0 {
		return e.Attribute(Name{Local: "xmlns"}, uri)
	}
	return e.Attribute(Name{Space: "xmlns", Local: prefix}, uri)
}

// Text writes escaped character data into the current element.
func (e *Encoder) Text(v string) error {
	n := len(e.stack)
	if n == 0 {
		return fmt.Errorf("xml text written outside of an element")
	}

	e.closeStartTag()
	e.stack[n-1].hasContent = true
	escapeText(e.w, v)
	return nil
}

// EndElement closes the current element. An element without content is
// written as a self-closing tag.
func (e *Encoder) EndElement() error {
	n := len(e.stack)
	if n == 0 {
		return fmt.Errorf("xml end element without matching start element")
	}
	el := e.stack[n-1]
	e.stack = e.stack[:n-1]

	if !el.hasContent {
		e.tagOpen = false
		e.w.WriteString("/>")
	} else {
		e.closeStartTag()
		if el.hasChildren {
			e.writeIndent(n - 1)
		}
		e.w.WriteString("</")
		e.w.WriteString(el.name.String())
		e.w.WriteByte('>')
	}

	if len(e.stack) == 0 && len(e.options.Indent) != 0 {
		e.w.WriteByte('\n')
	}
	return nil
}

// Element writes a complete element holding only the text v.
func (e *Encoder) Element(name Name, v string) error {
	if err := e.StartElement(name); err != nil {
		return err
	}
	if err := e.Text(v); err != nil {
		return err
	}
	return e.EndElement()
}

// EmptyElement writes a complete element with no content.
func (e *Encoder) EmptyElement(name Name) error {
	if err := e.StartElement(name); err != nil {
		return err
	}
	return e.EndElement()
}

// String returns the string output of the XML encoder
func (e *Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the XML encoder
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

func (e *Encoder) closeStartTag() {
	if e.tagOpen {
		e.w.WriteByte('>')
		e.tagOpen = false
	}
}

func (e *Encoder) writeIndent(depth int) {
	if len(e.options.Indent) == 0 {
		return
	}
	e.w.WriteByte('\n')
	e.w.WriteString(strings.Repeat(e.options.Indent, depth))
}
