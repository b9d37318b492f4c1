package xmlformat

// Namespace binds a namespace prefix to a namespace URI.
type Namespace struct {
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`
	URI    string `yaml:"uri" json:"uri" toml:"uri"`
}

// NamespaceTable is an ordered set of namespace bindings. Order is the order
// in which prefixes were first added, and is the order of the xmlns
// declarations written by the Encoder.
type NamespaceTable []Namespace

// Lookup returns the URI bound to prefix.
func (t NamespaceTable) Lookup(prefix string) (string, bool) {
	for _, ns := range t {
		if ns.Prefix == prefix {
			return ns.URI, true
		}
	}
	return "", false
}

// Set binds prefix to uri, replacing the URI of an existing binding in place.
func (t *NamespaceTable) Set(prefix, uri string) {
	for i := range *t {
		if (*t)[i].Prefix == prefix {
			(*t)[i].URI = uri
			return
		}
	}
	*t = append(*t, Namespace{Prefix: prefix, URI: uri})
}

// Settings configures encoding and decoding.
type Settings struct {
	// RootName is the name of the root element written by the Encoder.
	RootName string `yaml:"root_name" json:"root_name" toml:"root_name"`

	// DefaultTagName names the element written for an array style key whose
	// value is not a string.
	DefaultTagName string `yaml:"default_tag_name" json:"default_tag_name" toml:"default_tag_name"`

	// AttributeNames lists the keys written as attributes instead of child
	// elements.
	AttributeNames []string `yaml:"attribute_names" json:"attribute_names" toml:"attribute_names"`

	// TextNodeName is the key holding character data that sits next to
	// attributes or child elements.
	TextNodeName string `yaml:"text_node_name" json:"text_node_name" toml:"text_node_name"`

	// Namespaces is the namespace table.
	Namespaces NamespaceTable `yaml:"namespaces" json:"namespaces" toml:"namespaces"`

	// NamespacedProperties maps an element or attribute name to the prefix of
	// the namespace that qualifies it.
	NamespacedProperties map[string]string `yaml:"namespaced_properties" json:"namespaced_properties" toml:"namespaced_properties"`

	// ParseAttributes decodes attributes into map entries.
	ParseAttributes bool `yaml:"parse_attributes" json:"parse_attributes" toml:"parse_attributes"`

	// ParseNamespaces decodes namespace qualified attributes and elements,
	// and records the namespaces found in the namespace table.
	ParseNamespaces bool `yaml:"parse_namespaces" json:"parse_namespaces" toml:"parse_namespaces"`

	// ParseTextNodeAsProperty stores character data next to attributes or
	// child elements under TextNodeName. When unset it is stored under the
	// next array style key.
	ParseTextNodeAsProperty bool `yaml:"parse_text_node_as_property" json:"parse_text_node_as_property" toml:"parse_text_node_as_property"`

	// UseNamespaces qualifies names listed in NamespacedProperties and
	// declares the namespace table on the root element when encoding.
	UseNamespaces bool `yaml:"use_namespaces" json:"use_namespaces" toml:"use_namespaces"`

	// UseTextNodeProperty writes the TextNodeName entry of a map as character
	// data when encoding.
	UseTextNodeProperty bool `yaml:"use_text_node_property" json:"use_text_node_property" toml:"use_text_node_property"`

	// ImportSettingsFromXML makes the Decoder derive the root name, attribute
	// names and namespace tables from the decoded document.
	ImportSettingsFromXML bool `yaml:"import_settings_from_xml" json:"import_settings_from_xml" toml:"import_settings_from_xml"`

	// ParseFalseAsFalse decodes the literal "false" as boolean false. By
	// default it decodes as true.
	ParseFalseAsFalse bool `yaml:"parse_false_as_false" json:"parse_false_as_false" toml:"parse_false_as_false"`
}

// DefaultSettings returns the settings used when none are provided.
func DefaultSettings() Settings {
	return Settings{
		RootName:                "response",
		DefaultTagName:          "item",
		TextNodeName:            "text",
		ParseAttributes:         true,
		ParseNamespaces:         true,
		ParseTextNodeAsProperty: true,
		UseNamespaces:           true,
		UseTextNodeProperty:     true,
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	c := s
	if s.AttributeNames != nil {
		c.AttributeNames = append([]string(nil), s.AttributeNames...)
	}
	if s.Namespaces != nil {
		c.Namespaces = append(NamespaceTable(nil), s.Namespaces...)
	}
	if s.NamespacedProperties != nil {
		c.NamespacedProperties = make(map[string]string, len(s.NamespacedProperties))
		for k, v := range s.NamespacedProperties {
			c.NamespacedProperties[k] = v
		}
	}
	return c
}

// IsAttribute reports whether name is written as an attribute.
func (s Settings) IsAttribute(name string) bool {
	for _, n := range s.AttributeNames {
		if n == name {
			return true
		}
	}
	return false
}

// namespacePrefix returns the prefix qualifying name, if any.
func (s Settings) namespacePrefix(name string) (string, bool) {
	p, ok := s.NamespacedProperties[name]
	return p, ok
}
