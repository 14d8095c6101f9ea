package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Shape describes the structural identity of a node kind: which containers it
// owns, how those containers serialize, and which of its attributes carry
// user-visible text. Shapes are produced by the catalog; the node itself never
// consults the catalog again after construction.
type Shape struct {
	// Kind is the type tag of the element (e.g. "TextBlock", "ColumnSet").
	Kind string

	// ItemsField is the serialized field name of the item container
	// ("items", "columns", "body", ...). Empty means the kind has no item
	// container.
	ItemsField string

	// ActionsField is the serialized field name of the action container.
	// Empty means the kind has no action container.
	ActionsField string

	// Envelope, when set, nests both containers inside an embedded card
	// object under this field name (Action.ShowCard uses "card").
	Envelope string

	// ActionFamily marks kinds that are routed to action containers
	// automatically, without the caller asking for action placement.
	ActionFamily bool

	// TranslatableAttrs lists the attribute names whose values are
	// user-visible text eligible for translation.
	TranslatableAttrs []string
}

// Node is one element of a card tree. A node owns its children through its
// containers; the parent link is identity-only and exists to support upward
// cursor movement. Nodes are created through a catalog and acquire a parent
// exactly once, when a builder accepts them.
type Node struct {
	shape Shape

	// attrs preserves caller insertion order, which is the order
	// reproduced by serialization.
	attrs *orderedmap.OrderedMap[string, any]

	items   []*Node
	actions []*Node

	translatable bool
	parent       *Node
}

// NewNode constructs a bare node with the given shape. Attribute population
// and type validation are the catalog's job; see catalog.Catalog.New.
func NewNode(shape Shape) *Node {
	return &Node{
		shape: shape,
		attrs: orderedmap.New[string, any](),
	}
}

// Kind returns the type tag of the node.
func (n *Node) Kind() string { return n.shape.Kind }

// Shape returns the structural description the node was built with.
func (n *Node) Shape() Shape { return n.shape }

// HasItemContainer reports whether the kind statically declares an item
// container. A declared container serializes even when empty.
func (n *Node) HasItemContainer() bool { return n.shape.ItemsField != "" }

// HasActionContainer reports whether the kind statically declares an action
// container.
func (n *Node) HasActionContainer() bool { return n.shape.ActionsField != "" }

// IsComposite reports whether the node owns any container. Composite nodes
// attract the cursor when added; leaves do not.
func (n *Node) IsComposite() bool {
	return n.HasItemContainer() || n.HasActionContainer()
}

// IsActionFamily reports whether the node is routed to action containers by
// default.
func (n *Node) IsActionFamily() bool { return n.shape.ActionFamily }

// Items returns the item container contents in insertion order.
func (n *Node) Items() []*Node { return n.items }

// Actions returns the action container contents in insertion order.
func (n *Node) Actions() []*Node { return n.actions }

// Parent returns the node that accepted this one, or nil for a root or an
// unattached node.
func (n *Node) Parent() *Node { return n.parent }

// SetAttr sets an attribute value, appending the name to the insertion order
// if it is new.
func (n *Node) SetAttr(name string, value any) {
	n.attrs.Set(name, value)
}

// Attr returns the value of an attribute and whether it is set.
func (n *Node) Attr(name string) (any, bool) {
	return n.attrs.Get(name)
}

// Attrs returns the ordered attribute map. Callers must not mutate it while
// a serialization or translation walk is in flight.
func (n *Node) Attrs() *orderedmap.OrderedMap[string, any] {
	return n.attrs
}

// Translatable reports whether the node's own text attributes participate in
// translation. A false value excludes the node's attributes only; its subtree
// is still walked.
func (n *Node) Translatable() bool { return n.translatable }

// SetTranslatable overrides translation participation. The catalog derives
// the initial value from the presence of translatable attributes and the
// construction-time suppression flag.
func (n *Node) SetTranslatable(v bool) { n.translatable = v }

// TranslatableAttrs returns the attribute names eligible for translation on
// this kind.
func (n *Node) TranslatableAttrs() []string { return n.shape.TranslatableAttrs }

// Attach appends child to one of this node's containers and records the
// parent link. It assumes routing was already decided (and validated) by the
// caller; it never fails and never reorders existing children.
func (n *Node) Attach(child *Node, intoActions bool) {
	if intoActions {
		n.actions = append(n.actions, child)
	} else {
		n.items = append(n.items, child)
	}
	child.parent = n
}

// Clone returns a deep copy of the node and its subtree. Parent links inside
// the copy are rebuilt; the copy itself is detached.
func (n *Node) Clone() *Node {
	c := NewNode(n.shape)
	c.translatable = n.translatable
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		if ref, ok := pair.Value.(*Node); ok {
			c.attrs.Set(pair.Key, ref.Clone())
			continue
		}
		c.attrs.Set(pair.Key, pair.Value)
	}
	for _, child := range n.items {
		c.Attach(child.Clone(), false)
	}
	for _, child := range n.actions {
		c.Attach(child.Clone(), true)
	}
	return c
}
