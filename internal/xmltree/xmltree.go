// Package xmltree parses markup text into an element tree that keeps the
// namespace prefixes written in the document, the namespace declarations of
// each element and the element's own character data.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
)

// Name is an element or attribute name. Prefix is set only when it is bound
// by a namespace declaration in scope; an unbound prefix is left in Local as
// written, e.g. "p:name".
type Name struct {
	Prefix, Local string
}

// Attr is an attribute other than a namespace declaration.
type Attr struct {
	Name  Name
	Value string
}

// Namespace is a namespace declaration. Prefix is empty for a default
// namespace declaration.
type Namespace struct {
	Prefix, URI string
}

// Node is an element of the parsed document.
type Node struct {
	Name  Name
	Attrs []Attr

	// Namespaces declared on this element, in document order.
	Namespaces []Namespace

	Children []*Node

	// Text is the element's direct character data with whitespace-only
	// segments dropped, and surrounding whitespace trimmed. CDATA sections
	// are included as plain text.
	Text string

	// Line is the line of the element's start tag.
	Line int
}

// SyntaxError reports markup that is not well-formed.
type SyntaxError struct {
	Msg  string
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("XML syntax error on line %d: %s", e.Line, e.Msg)
}

type frame struct {
	node *Node
	raw  xml.Name
	text strings.Builder

	// prefixes bound by this element's declarations
	prefixes map[string]string
}

// Parse parses data into a tree rooted at the document element. It fails
// with a *SyntaxError when data holds no document element or is not
// well-formed.
func Parse(data []byte) (*Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	d.CharsetReader = charset.NewReaderLabel

	var stack []*frame
	var root *Node

	line := func() int {
		l, _ := d.InputPos()
		return l
	}

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				return nil, &SyntaxError{Msg: se.Msg, Line: se.Line}
			}
			return nil, &SyntaxError{Msg: err.Error(), Line: line()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, &SyntaxError{Msg: "extra content at the end of the document", Line: line()}
			}

			f := &frame{raw: t.Name, node: &Node{Line: line()}}
			seen := make(map[xml.Name]struct{}, len(t.Attr))
			for _, a := range t.Attr {
				if _, ok := seen[a.Name]; ok {
					return nil, &SyntaxError{Msg: fmt.Sprintf("attribute %s redefined", qualified(a.Name)), Line: line()}
				}
				seen[a.Name] = struct{}{}

				switch {
				case a.Name.Space == "xmlns":
					f.declare(a.Name.Local, a.Value)
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					f.declare("", a.Value)
				}
			}
			stack = append(stack, f)

			f.node.Name = resolve(stack, t.Name)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				f.node.Attrs = append(f.node.Attrs, Attr{Name: resolve(stack, a.Name), Value: a.Value})
			}

			if len(stack) == 1 {
				root = f.node
			} else {
				parent := stack[len(stack)-2].node
				parent.Children = append(parent.Children, f.node)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected end element </%s>", qualified(t.Name)), Line: line()}
			}
			f := stack[len(stack)-1]
			if f.raw != t.Name {
				return nil, &SyntaxError{
					Msg:  fmt.Sprintf("element <%s> closed by </%s>", qualified(f.raw), qualified(t.Name)),
					Line: line(),
				}
			}
			f.node.Text = strings.TrimSpace(f.text.String())
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if !isBlank(string(t)) {
					return nil, &SyntaxError{Msg: "character data outside the document element", Line: line()}
				}
				continue
			}
			if isBlank(string(t)) {
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}

	if len(stack) != 0 {
		return nil, &SyntaxError{
			Msg:  fmt.Sprintf("premature end of data, element <%s> not closed", qualified(stack[len(stack)-1].raw)),
			Line: line(),
		}
	}
	if root == nil {
		return nil, &SyntaxError{Msg: "document is empty", Line: line()}
	}
	return root, nil
}

// InScope returns the prefixed namespaces visible on an element given the
// namespaces inherited from its ancestors: inherited declarations first, in
// their order, with a redeclared prefix updated in place and new prefixes
// appended. Default namespace declarations are not included.
func (n *Node) InScope(inherited []Namespace) []Namespace {
	if len(n.Namespaces) == 0 {
		return inherited
	}

	scope := make([]Namespace, len(inherited), len(inherited)+len(n.Namespaces))
	copy(scope, inherited)
	for _, ns := range n.Namespaces {
		if len(ns.Prefix) == 0 {
			continue
		}
		found := false
		for i := range scope {
			if scope[i].Prefix == ns.Prefix {
				scope[i].URI = ns.URI
				found = true
				break
			}
		}
		if !found {
			scope = append(scope, ns)
		}
	}
	return scope
}

func (f *frame) declare(prefix, uri string) {
	if f.prefixes == nil {
		f.prefixes = map[string]string{}
	}
	f.prefixes[prefix] = uri
	f.node.Namespaces = append(f.node.Namespaces, Namespace{Prefix: prefix, URI: uri})
}

// resolve maps a raw name to a Name, keeping the prefix only when a
// declaration for it is in scope.
func resolve(stack []*frame, raw xml.Name) Name {
	if len(raw.Space) == 0 {
		return Name{Local: raw.Local}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if _, ok := stack[i].prefixes[raw.Space]; ok {
			return Name{Prefix: raw.Space, Local: raw.Local}
		}
	}
	return Name{Local: qualified(raw)}
}

func qualified(n xml.Name) string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func isBlank(s string) bool {
	for _, r := range s {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
