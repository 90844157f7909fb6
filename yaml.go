package ngmat

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseAttributes decodes a YAML mapping into Attributes, keeping the
// order of the document. Scalar values are stored by their text form;
// nulls are stored as "" so the attribute is present but empty.
//
//	id: orders
//	sort: created
//	sort-direction: desc
func ParseAttributes(data []byte) (Attributes, error) {
	var attrs Attributes
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		if errors.Is(err, ErrInvalidAttributes) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidAttributes, err)
	}
	return attrs, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidAttributes, value.Line)
	}
	out := make(Attributes, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d: attribute values must be scalars", ErrInvalidAttributes, key.Line)
		}
		if val.ShortTag() == "!!null" {
			out.Set(key.Value, "")
			continue
		}
		out.Set(key.Value, val.Value)
	}
	*a = out
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, attr := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: attr.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: attr.Value},
		)
	}
	return node, nil
}
