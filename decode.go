package xmlformat

import (
	"errors"
	"strconv"
	"strings"

	"github.com/markupdoc/xmlformat/document"
	"github.com/markupdoc/xmlformat/internal/xmltree"
	"github.com/markupdoc/xmlformat/logging"
)

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	Settings Settings
	Logger   logging.Logger
}

// Decoder reads XML documents into document trees.
type Decoder struct {
	options DecoderOptions
}

// DecodeResult holds a decoded document tree and the settings in effect after
// decoding it.
type DecodeResult struct {
	Value document.Value

	// Settings are the decoder's settings with the namespaces found in the
	// document merged into the namespace table. With ImportSettingsFromXML
	// they also carry the root name, attribute names and namespaced
	// properties derived from the document.
	Settings Settings
}

// NewDecoder returns a Decoder. Options start from DefaultSettings and a
// no-op logger.
func NewDecoder(optFns ...func(*DecoderOptions)) *Decoder {
	o := DecoderOptions{
		Settings: DefaultSettings(),
		Logger:   logging.Noop{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	o.Settings = o.Settings.Clone()

	return &Decoder{options: o}
}

// Settings returns a copy of the decoder's settings.
func (d *Decoder) Settings() Settings {
	return d.options.Settings.Clone()
}

// Decode reads the XML document in data. Empty input decodes to an empty map.
// Markup that is not well-formed fails with *MalformedInputError.
func (d *Decoder) Decode(data []byte) (*DecodeResult, error) {
	s := d.options.Settings.Clone()
	if len(data) == 0 {
		return &DecodeResult{Value: document.NewMap(), Settings: s}, nil
	}

	root, err := xmltree.Parse(data)
	if err != nil {
		var se *xmltree.SyntaxError
		if errors.As(err, &se) {
			return nil, &MalformedInputError{Message: se.Msg, Line: se.Line, Err: err}
		}
		return nil, &MalformedInputError{Message: err.Error(), Line: 1, Err: err}
	}

	if s.ImportSettingsFromXML {
		s.AttributeNames = nil
		s.NamespacedProperties = map[string]string{}
		s.Namespaces = nil
		s.RootName = root.Name.Local

		// the last prefixed declaration on the root becomes the root's
		// namespace
		for _, ns := range root.Namespaces {
			if len(ns.Prefix) != 0 {
				s.NamespacedProperties[s.RootName] = ns.Prefix
			}
		}
	}

	b := &treeBuilder{settings: &s}
	v := b.build(root, nil)

	if s.ImportSettingsFromXML {
		d.options.Logger.Logf(logging.Debug, "imported settings from XML: root %q, %d attribute names, %d namespaces",
			s.RootName, len(s.AttributeNames), len(s.Namespaces))
	}

	return &DecodeResult{Value: v, Settings: s}, nil
}

// treeBuilder folds a parsed element tree into a document tree. It updates
// settings with discovered namespaces, and with attribute names and
// namespaced properties when importing settings.
type treeBuilder struct {
	settings *Settings
}

// build returns the value of node: nil for an empty element, the coerced
// text for a text only element, or a map.
func (b *treeBuilder) build(node *xmltree.Node, inherited []xmltree.Namespace) document.Value {
	s := b.settings
	r := document.NewMap()

	// namespace prefix owning each key, "" for unqualified keys
	owners := map[string]string{}

	if s.ParseAttributes {
		for _, a := range node.Attrs {
			if len(a.Name.Prefix) != 0 {
				continue
			}
			if s.ImportSettingsFromXML && !s.IsAttribute(a.Name.Local) {
				s.AttributeNames = append(s.AttributeNames, a.Name.Local)
			}
			r.Set(a.Name.Local, b.coerce(a.Value))
			owners[a.Name.Local] = ""
		}
	}

	scope := node.InScope(inherited)

	for _, c := range node.Children {
		if len(c.Name.Prefix) != 0 {
			continue
		}
		addChild(r, c.Name.Local, b.build(c, scope))
		owners[c.Name.Local] = ""
	}

	if s.ParseNamespaces {
		for _, ns := range scope {
			s.Namespaces.Set(ns.Prefix, ns.URI)

			if s.ParseAttributes {
				for _, a := range node.Attrs {
					if a.Name.Prefix != ns.Prefix {
						continue
					}
					key := namespacedKey(r, owners, ns.Prefix, a.Name.Local)
					if s.ImportSettingsFromXML && !s.IsAttribute(key) {
						s.NamespacedProperties[key] = ns.Prefix
						s.AttributeNames = append(s.AttributeNames, key)
					}
					r.Set(key, b.coerce(a.Value))
					owners[key] = ns.Prefix
				}
			}

			for _, c := range node.Children {
				if c.Name.Prefix != ns.Prefix {
					continue
				}
				key := namespacedKey(r, owners, ns.Prefix, c.Name.Local)
				if s.ImportSettingsFromXML {
					s.NamespacedProperties[key] = ns.Prefix
				}
				addChild(r, key, b.build(c, scope))
				owners[key] = ns.Prefix
			}
		}
	}

	if len(node.Text) == 0 {
		if r.Len() == 0 {
			return nil
		}
		return r
	}

	text := b.coerce(node.Text)
	if r.Len() == 0 {
		return text
	}
	if s.ParseTextNodeAsProperty {
		r.Set(s.TextNodeName, text)
	} else {
		r.Set(strconv.Itoa(r.NextIndex()), text)
	}
	return r
}

// namespacedKey returns the key for a namespaced name: the local name, or
// "prefix:local" when the local name is already held by an entry of another
// namespace or of no namespace.
func namespacedKey(r *document.Map, owners map[string]string, prefix, local string) string {
	if owner, ok := owners[local]; ok && r.Has(local) && owner != prefix {
		return prefix + ":" + local
	}
	return local
}

// addChild stores v under key. A repeated key wraps the value already stored
// and v into a new sequence, even when the stored value is a sequence itself.
func addChild(r *document.Map, key string, v document.Value) {
	prev, ok := r.Get(key)
	if !ok {
		r.Set(key, v)
		return
	}
	r.Set(key, document.Sequence{prev, v})
}

// coerce converts attribute values and text to scalars. Blank text is nil,
// "true" is true, "false" is true unless ParseFalseAsFalse is set, and
// anything else is returned as is.
func (b *treeBuilder) coerce(v string) document.Value {
	if len(strings.TrimSpace(v)) == 0 {
		return nil
	}
	switch v {
	case "true":
		return true
	case "false":
		return !b.settings.ParseFalseAsFalse
	}
	return v
}
