package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the map as a YAML mapping with keys in insertion order.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.Keys() {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		vn := &yaml.Node{}
		if err := vn.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("unable to marshal document key %q, %w", k, err)
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

// ParseYAML decodes the first YAML document in data into a document tree,
// keeping mapping key order. Since JSON is valid YAML, ParseYAML also reads
// JSON input.
func ParseYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to parse YAML document, %w", err)
	}
	return fromYAMLNode(&root)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])

	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			ev, err := fromYAMLNode(v)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, ev)
		}
		return m, nil

	case yaml.SequenceNode:
		seq := make(Sequence, 0, len(n.Content))
		for _, c := range n.Content {
			ev, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return seq, nil

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unresolved alias", n.Line)
		}
		return fromYAMLNode(n.Alias)

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return b, nil
		}
		return n.Value, nil
	}

	return nil, fmt.Errorf("line %d: unsupported YAML node kind %v", n.Line, n.Kind)
}
