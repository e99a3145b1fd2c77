package build

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/format"
)

type layerFields struct {
	Thickness   *float64    `yaml:"thickness,omitempty"`
	Composition Composition `yaml:"composition,omitempty"`
	Description *string     `yaml:"description,omitempty"`
}

// UnmarshalYAML decodes mapping "layer name" -> layer fields, keeping mapping order.
func (b *Build) UnmarshalYAML(value *yaml.Node) error {
	if isNull(value) {
		*b = Build{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: build must be a mapping of layer names to layers", value.Line)
	}

	layers := make(Build, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, layerNode := value.Content[i], value.Content[i+1]

		fields := layerFields{}
		if !isNull(layerNode) {
			if err := layerNode.Decode(&fields); err != nil {
				return errors.Wrapf(err, "layer %q", keyNode.Value)
			}
		}
		layers = append(layers, Layer{
			Name:           keyNode.Value,
			Thickness:      fields.Thickness,
			Composition:    fields.Composition,
			Description:    fields.Description,
			FloatThickness: isIntegralFloat(mappingValue(layerNode, "thickness")),
		})
	}
	*b = layers
	return nil
}

// MarshalYAML encodes build as mapping in layer order. Layers with no
// fields are written as {}.
func (b Build) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, layer := range b {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(layerFields{
			Composition: layer.Composition,
			Description: layer.Description,
		}); err != nil {
			return nil, errors.Wrapf(err, "layer %q", layer.Name)
		}
		if layer.Thickness != nil {
			thickness := numberNode(*layer.Thickness, layer.FloatThickness)
			valueNode.Content = append([]*yaml.Node{stringNode("thickness"), thickness}, valueNode.Content...)
		}
		if len(valueNode.Content) == 0 {
			valueNode.Style = yaml.FlowStyle
		}
		mapping.Content = append(mapping.Content, stringNode(layer.Name), valueNode)
	}
	return mapping, nil
}

// UnmarshalYAML decodes mapping "material name" -> volume fraction, keeping mapping order.
func (c *Composition) UnmarshalYAML(value *yaml.Node) error {
	if isNull(value) {
		*c = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: composition must be a mapping of material names to volume fractions", value.Line)
	}

	composition := make(Composition, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, fractionNode := value.Content[i], value.Content[i+1]
		var fraction float64
		if err := fractionNode.Decode(&fraction); err != nil {
			return errors.Wrapf(err, "fraction of %q", keyNode.Value)
		}
		composition = append(composition, Constituent{
			Material:      keyNode.Value,
			Fraction:      fraction,
			FloatFraction: isIntegralFloat(fractionNode),
		})
	}
	*c = composition
	return nil
}

// MarshalYAML encodes composition as mapping in constituent order.
func (c Composition) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, constituent := range c {
		fractionNode := numberNode(constituent.Fraction, constituent.FloatFraction)
		mapping.Content = append(mapping.Content, stringNode(constituent.Material), fractionNode)
	}
	return mapping, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// mappingValue returns value node of key in a mapping node, nil when absent.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// isIntegralFloat reports whether node is a float scalar with integral
// value, the only case where float and integer rendering differ.
func isIntegralFloat(node *yaml.Node) bool {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() != "!!float" {
		return false
	}
	var value float64
	if err := node.Decode(&value); err != nil {
		return false
	}
	return value == math.Trunc(value) && !math.IsInf(value, 0)
}

func numberNode(value float64, isFloat bool) *yaml.Node {
	if isFloat || value != math.Trunc(value) || math.IsInf(value, 0) || math.IsNaN(value) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: format.Float(value)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: format.Number(value)}
}
