package header

import (
	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func (m TagMap) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, t := range m {
		n.Content = append(n.Content, strNode(t.Name), strNode(t.Value))
	}
	return n
}

// MarshalYAML encodes the map as a YAML mapping keeping insertion order.
// Values are always encoded as strings.
func (m TagMap) MarshalYAML() (any, error) {
	return m.yamlNode(), nil
}

// UnmarshalYAML decodes a YAML mapping into the map keeping the order of keys.
func (m *TagMap) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return errtrace.Wrap(NewInvalidArgumentError("tag map: YAML mapping expected"))
	}

	tm := make(TagMap, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return errtrace.Wrap(NewInvalidArgumentError("tag map: line %d: scalar tag and value expected", k.Line))
		}
		tm.Set(k.Value, v.Value)
	}
	*m = tm
	return nil
}

// MarshalYAML encodes the groups as a YAML mapping in first-seen order,
// see [Grouped.MarshalJSON].
func (g *Grouped) MarshalYAML() (any, error) {
	if g == nil {
		return nil, nil
	}

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, typ := range g.types {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if typ == TypeCO {
			for _, c := range g.comments {
				seq.Content = append(seq.Content, strNode(c))
			}
		} else {
			for _, tm := range g.records[typ] {
				seq.Content = append(seq.Content, tm.yamlNode())
			}
		}
		n.Content = append(n.Content, strNode(string(typ)), seq)
	}
	return n, nil
}
