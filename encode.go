package xmlformat

import (
	"strconv"
	"strings"

	"github.com/markupdoc/xmlformat/document"
	"github.com/markupdoc/xmlformat/logging"
	"github.com/markupdoc/xmlformat/xml"
)

// prettyIndent is the indentation used for pretty printed output.
const prettyIndent = "    "

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	Settings Settings
	Logger   logging.Logger
}

// Encoder writes document trees as XML.
type Encoder struct {
	options EncoderOptions
}

// NewEncoder returns an Encoder. Options start from DefaultSettings and a
// no-op logger.
func NewEncoder(optFns ...func(*EncoderOptions)) *Encoder {
	o := EncoderOptions{
		Settings: DefaultSettings(),
		Logger:   logging.Noop{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	o.Settings = o.Settings.Clone()

	return &Encoder{options: o}
}

// Settings returns a copy of the encoder's settings.
func (e *Encoder) Settings() Settings {
	return e.options.Settings.Clone()
}

// Encode writes v as an XML document. v is a document tree value or any Go
// value accepted by document.FromInterface. When pretty is set child elements
// are indented by four spaces.
//
// A name qualified by a prefix that is missing from the namespace table is
// written without a matching xmlns declaration; a warning is logged.
func (e *Encoder) Encode(v interface{}, pretty bool) (string, error) {
	tree, err := document.FromInterface(v)
	if err != nil {
		return "", err
	}

	enc := xml.NewEncoder(func(o *xml.EncoderOptions) {
		if pretty {
			o.Indent = prettyIndent
		}
	})

	w := &treeWriter{
		enc:      enc,
		settings: &e.options.Settings,
		logger:   e.options.Logger,
	}
	if err := w.writeDocument(tree); err != nil {
		return "", err
	}

	return enc.String(), nil
}

type treeWriter struct {
	enc      *xml.Encoder
	settings *Settings
	logger   logging.Logger
}

func (w *treeWriter) writeDocument(tree document.Value) error {
	s := w.settings
	if err := w.enc.WriteHeader(); err != nil {
		return err
	}

	var rootPrefix string
	var hasRootPrefix bool
	if s.UseNamespaces {
		rootPrefix, hasRootPrefix = s.namespacePrefix(s.RootName)
	}

	root := xml.Name{Local: s.RootName}
	if hasRootPrefix {
		root.Space = rootPrefix
	}
	if err := w.enc.StartElement(root); err != nil {
		return err
	}

	if s.UseNamespaces {
		if hasRootPrefix {
			if uri, ok := s.Namespaces.Lookup(rootPrefix); ok {
				if err := w.enc.NamespaceDecl(rootPrefix, uri); err != nil {
					return err
				}
			} else {
				w.warnUndeclared(rootPrefix, s.RootName)
			}
		}
		for _, ns := range s.Namespaces {
			if hasRootPrefix && ns.Prefix == rootPrefix {
				continue
			}
			if err := w.enc.NamespaceDecl(ns.Prefix, ns.URI); err != nil {
				return err
			}
		}
	}

	if err := w.writeContent(tree); err != nil {
		return err
	}
	return w.enc.EndElement()
}

// entry is a key, value pair of a map, or an index, value pair of a sequence.
type entry struct {
	key   string
	value document.Value
}

func entriesOf(v document.Value) []entry {
	switch tv := v.(type) {
	case *document.Map:
		entries := make([]entry, 0, tv.Len())
		tv.Range(func(k string, ev document.Value) bool {
			entries = append(entries, entry{key: k, value: ev})
			return true
		})
		return entries
	case document.Sequence:
		entries := make([]entry, len(tv))
		for i, ev := range tv {
			entries[i] = entry{key: strconv.Itoa(i), value: ev}
		}
		return entries
	}
	return nil
}

// writeContent writes the attributes, child elements and character data of
// the current element from v.
func (w *treeWriter) writeContent(v document.Value) error {
	if !document.IsCollection(v) {
		if str, ok := scalarString(v); ok && len(str) != 0 {
			return w.enc.Text(str)
		}
		return nil
	}

	s := w.settings
	var text strings.Builder

	entries := entriesOf(v)
	children := make([]entry, 0, len(entries))

	for _, en := range entries {
		if s.UseTextNodeProperty && en.key == s.TextNodeName && !document.IsCollection(en.value) {
			str, _ := scalarString(en.value)
			text.WriteString(str)
			continue
		}

		if _, ok := document.Index(en.key); ok {
			if str, ok := en.value.(string); ok {
				text.WriteString(str)
				continue
			}
			en.key = s.DefaultTagName
		}

		if !document.IsCollection(en.value) && s.IsAttribute(en.key) {
			str, _ := scalarString(en.value)
			if err := w.enc.Attribute(w.qualify(en.key), str); err != nil {
				return err
			}
			continue
		}

		children = append(children, en)
	}

	for _, en := range children {
		name := w.qualify(en.key)

		if document.IsCollection(en.value) {
			if err := w.enc.StartElement(name); err != nil {
				return err
			}
			if err := w.writeContent(en.value); err != nil {
				return err
			}
			if err := w.enc.EndElement(); err != nil {
				return err
			}
			continue
		}

		str, ok := scalarString(en.value)
		if !ok {
			if err := w.enc.EmptyElement(name); err != nil {
				return err
			}
			continue
		}
		if err := w.enc.Element(name, str); err != nil {
			return err
		}
	}

	if text.Len() != 0 {
		return w.enc.Text(text.String())
	}
	return nil
}

// qualify returns the element or attribute name for key, qualified by its
// namespace prefix when namespaces are in use. Keys already written as
// "prefix:name" are left as is.
func (w *treeWriter) qualify(key string) xml.Name {
	s := w.settings
	if !s.UseNamespaces || strings.Contains(key, ":") {
		return xml.Name{Local: key}
	}

	prefix, ok := s.namespacePrefix(key)
	if !ok {
		return xml.Name{Local: key}
	}
	if _, declared := s.Namespaces.Lookup(prefix); !declared {
		w.warnUndeclared(prefix, key)
	}
	return xml.Name{Space: prefix, Local: key}
}

func (w *treeWriter) warnUndeclared(prefix, name string) {
	w.logger.Logf(logging.Warn, "namespace prefix %q of %q is not in the namespace table", prefix, name)
}

// scalarString returns the text form of a scalar. It returns false for nil.
func scalarString(v document.Value) (string, bool) {
	switch tv := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(tv), true
	case string:
		return tv, true
	}
	return "", false
}
