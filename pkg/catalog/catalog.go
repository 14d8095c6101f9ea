package catalog

import (
	"fmt"
	"sync"

	"github.com/cardwright/cardwright/pkg/domain"
)

// Schema maps attribute names to their expected types.
// Example: {"text": String(), "wrap": Bool(), "targetElements": StringList()}
type Schema map[string]Type

// Attr is a single caller-supplied attribute. Attribute order is preserved
// through construction and serialization.
type Attr struct {
	Name  string
	Value any
}

// A is shorthand for constructing an Attr.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// AttrDontTranslate is a construction-time flag recognized on every kind.
// It suppresses translation of the node's own text attributes and is never
// stored or serialized.
const AttrDontTranslate = "dontTranslate"

// Definition declares one node kind: its recognized attributes, which of them
// carry translatable text, and the containers the kind owns.
type Definition struct {
	Kind string

	// Attributes holds the recognized attribute names and their types.
	// Attributes not listed here are passed through verbatim.
	Attributes Schema

	// Translatable lists attribute names whose values are user-visible
	// text eligible for translation.
	Translatable []string

	// ItemsField / ActionsField are the serialized field names of the
	// containers; empty means the kind does not own that container.
	ItemsField   string
	ActionsField string

	// Envelope nests both containers inside an embedded card object under
	// the given field name (Action.ShowCard uses "card").
	Envelope string

	// ActionFamily marks kinds that are auto-routed to action containers.
	ActionFamily bool
}

// Shape converts the definition into the structural description a node
// carries for the rest of its life.
func (d Definition) Shape() domain.Shape {
	return domain.Shape{
		Kind:              d.Kind,
		ItemsField:        d.ItemsField,
		ActionsField:      d.ActionsField,
		Envelope:          d.Envelope,
		ActionFamily:      d.ActionFamily,
		TranslatableAttrs: d.Translatable,
	}
}

// Catalog is a registry of node kind definitions. Lookups are safe for
// concurrent use; registration is expected at setup time.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		defs: make(map[string]Definition),
	}
}

// Register adds a kind definition to the catalog.
// If a definition with the same kind exists, it is overwritten.
func (c *Catalog) Register(def Definition) error {
	if def.Kind == "" {
		return fmt.Errorf("catalog: definition missing kind")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs[def.Kind] = def
	return nil
}

// Lookup returns the definition for a kind.
func (c *Catalog) Lookup(kind string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[kind]
	return def, ok
}

// Kinds returns the registered kind names.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	kinds := make([]string, 0, len(c.defs))
	for kind := range c.defs {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Node constructs a node of the given kind from caller-supplied attributes.
//
// Recognized attributes are validated against the definition's schema;
// unknown attributes are passed through verbatim (they reappear in the
// serialized output unchanged). The AttrDontTranslate flag is consumed here
// and never stored. Translatability derives from the presence of at least one
// translatable attribute, unless suppressed.
func (c *Catalog) Node(kind string, attrs ...Attr) (*domain.Node, error) {
	def, ok := c.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("catalog: unknown kind %q", kind)
	}

	node := domain.NewNode(def.Shape())

	suppressed := false
	var errs []error
	for _, attr := range attrs {
		if attr.Name == AttrDontTranslate {
			flag, ok := attr.Value.(bool)
			if !ok {
				errs = append(errs, &AttributeError{
					Kind:   kind,
					Name:   attr.Name,
					Reason: "expected bool",
					Value:  attr.Value,
				})
				continue
			}
			suppressed = suppressed || flag
			continue
		}

		if typ, known := def.Attributes[attr.Name]; known {
			if err := typ.Validate(attr.Value); err != nil {
				errs = append(errs, &AttributeError{
					Kind:   kind,
					Name:   attr.Name,
					Reason: err.Error(),
					Value:  attr.Value,
				})
				continue
			}
		}
		node.SetAttr(attr.Name, attr.Value)
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	node.SetTranslatable(!suppressed && hasTranslatableText(node, def.Translatable))
	return node, nil
}

// MustNode is like Node but panics on error. Intended for statically-known
// construction in examples and tests.
func (c *Catalog) MustNode(kind string, attrs ...Attr) *domain.Node {
	node, err := c.Node(kind, attrs...)
	if err != nil {
		panic(err)
	}
	return node
}

func hasTranslatableText(node *domain.Node, names []string) bool {
	for _, name := range names {
		if _, ok := node.Attr(name); ok {
			return true
		}
	}
	return false
}
