// Package loader reads flat YAML card definitions and replays them through
// the builder's batch interface.
//
// A definition is a list of steps, written in the order a caller would issue
// Add calls. Elements are mappings carrying a kind and its attributes;
// navigation markers are the plain scalars "up" and "top":
//
//	version: "1.2"
//	steps:
//	  - kind: TextBlock
//	    attrs:
//	      text: Header
//	  - kind: ColumnSet
//	  - kind: Column
//	  - kind: TextBlock
//	    attrs:
//	      text: Cell text
//	  - up
//	  - kind: Column
//	  - kind: Action.Submit
//	    action: true
//	    attrs:
//	      title: Send
//
// Attribute order in the YAML mapping is preserved into the node, and from
// there into serialized output.
package loader

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/catalog"
)

// Step is one entry of a definition: either a navigation marker or an
// element with ordered attributes.
type Step struct {
	// Marker is "up" or "top" for navigation steps, empty for elements.
	Marker string

	Kind          string
	Action        bool
	DontTranslate bool
	Attrs         []catalog.Attr
}

// stepEnvelope is the mapstructure target for an element step's scalar
// fields. Attributes are handled separately to keep their order.
type stepEnvelope struct {
	Kind          string `mapstructure:"kind"`
	Action        bool   `mapstructure:"action"`
	DontTranslate bool   `mapstructure:"dontTranslate"`
}

// Definition is a parsed card definition.
type Definition struct {
	Schema  string
	Version string
	Steps   []Step
}

// Parse decodes a YAML card definition. The document is either a mapping
// with optional schema/version keys and a steps list, or a bare steps list.
func Parse(data []byte) (*Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("loader: parse yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("loader: empty definition")
	}

	def := &Definition{}
	body := root.Content[0]

	switch body.Kind {
	case yaml.SequenceNode:
		steps, err := parseSteps(body)
		if err != nil {
			return nil, err
		}
		def.Steps = steps
	case yaml.MappingNode:
		for i := 0; i+1 < len(body.Content); i += 2 {
			key := body.Content[i].Value
			value := body.Content[i+1]
			switch key {
			case "schema":
				def.Schema = value.Value
			case "version":
				def.Version = value.Value
			case "steps":
				steps, err := parseSteps(value)
				if err != nil {
					return nil, err
				}
				def.Steps = steps
			default:
				return nil, fmt.Errorf("loader: unknown key %q", key)
			}
		}
	default:
		return nil, fmt.Errorf("loader: definition must be a mapping or a list")
	}

	return def, nil
}

func parseSteps(seq *yaml.Node) ([]Step, error) {
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("loader: steps must be a list")
	}

	steps := make([]Step, 0, len(seq.Content))
	for i, item := range seq.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			if item.Value != "up" && item.Value != "top" {
				return nil, fmt.Errorf("loader: step %d: unknown marker %q", i, item.Value)
			}
			steps = append(steps, Step{Marker: item.Value})
		case yaml.MappingNode:
			step, err := parseElement(item)
			if err != nil {
				return nil, fmt.Errorf("loader: step %d: %w", i, err)
			}
			steps = append(steps, step)
		default:
			return nil, fmt.Errorf("loader: step %d: expected marker or element", i)
		}
	}
	return steps, nil
}

func parseElement(node *yaml.Node) (Step, error) {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return Step{}, err
	}
	delete(raw, "attrs")

	var envelope stepEnvelope
	if err := mapstructure.Decode(raw, &envelope); err != nil {
		return Step{}, err
	}
	if envelope.Kind == "" {
		return Step{}, fmt.Errorf("element missing kind")
	}

	step := Step{
		Kind:          envelope.Kind,
		Action:        envelope.Action,
		DontTranslate: envelope.DontTranslate,
	}

	// Walk the attrs mapping by hand so insertion order survives; a plain
	// map decode would shuffle it.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "attrs" {
			continue
		}
		attrsNode := node.Content[i+1]
		if attrsNode.Kind != yaml.MappingNode {
			return Step{}, fmt.Errorf("attrs must be a mapping")
		}
		for j := 0; j+1 < len(attrsNode.Content); j += 2 {
			name := attrsNode.Content[j].Value
			var value any
			if err := attrsNode.Content[j+1].Decode(&value); err != nil {
				return Step{}, fmt.Errorf("attribute %q: %w", name, err)
			}
			step.Attrs = append(step.Attrs, catalog.A(name, value))
		}
	}
	return step, nil
}

// NewCard builds a card from the definition, replaying its steps through the
// builder. Extra options are applied after the definition's schema/version
// overrides, so callers can still inject loggers, hooks or a translator.
func (d *Definition) NewCard(opts ...builder.Option) (*builder.Card, error) {
	base := make([]builder.Option, 0, len(opts)+2)
	if d.Schema != "" {
		base = append(base, builder.WithSchema(d.Schema))
	}
	if d.Version != "" {
		base = append(base, builder.WithVersion(d.Version))
	}
	base = append(base, opts...)

	card := builder.New(base...)
	if err := d.Apply(card); err != nil {
		return nil, err
	}
	return card, nil
}

// Apply replays the definition's steps onto an existing card, starting at
// its current cursor position.
func (d *Definition) Apply(card *builder.Card) error {
	for i, step := range d.Steps {
		switch step.Marker {
		case "up":
			card.UpOneLevel()
			continue
		case "top":
			card.BackToTop()
			continue
		}

		attrs := step.Attrs
		if step.DontTranslate {
			attrs = append(attrs, catalog.A(catalog.AttrDontTranslate, true))
		}
		node, err := card.Node(step.Kind, attrs...)
		if err != nil {
			return fmt.Errorf("loader: step %d: %w", i, err)
		}

		var addOpts []builder.AddOption
		if step.Action {
			addOpts = append(addOpts, builder.AsAction())
		}
		if err := card.Add(node, addOpts...); err != nil {
			return fmt.Errorf("loader: step %d: %w", i, err)
		}
	}
	return nil
}
