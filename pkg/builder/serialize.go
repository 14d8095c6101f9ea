package builder

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cardwright/cardwright/pkg/domain"
)

// Document serializes the card into an ordered document: a depth-first,
// pre-order walk emitting, per node, the kind tag, the attributes in
// insertion order, then the item container and the action container under
// their catalog field names. Statically-declared containers appear even when
// empty; unset attributes are omitted entirely.
//
// The walk is read-only, so Document may be called repeatedly and
// concurrently with itself, though never concurrently with mutation.
func (c *Card) Document() *orderedmap.OrderedMap[string, any] {
	doc := orderedmap.New[string, any]()
	doc.Set("type", c.root.Kind())
	doc.Set("schema", c.schemaURL)
	doc.Set("version", c.version)
	writeAttrs(doc, c.root)
	writeContainers(doc, c.root)
	return doc
}

// JSON serializes the card to compact JSON.
func (c *Card) JSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// IndentJSON serializes the card to indented JSON for human inspection.
func (c *Card) IndentJSON() ([]byte, error) {
	return json.MarshalIndent(c.Document(), "", "  ")
}

func serializeNode(n *domain.Node) *orderedmap.OrderedMap[string, any] {
	doc := orderedmap.New[string, any]()
	doc.Set("type", n.Kind())
	writeAttrs(doc, n)

	if envelope := n.Shape().Envelope; envelope != "" {
		// Show-card style kinds nest their containers inside an
		// embedded card object rather than carrying them directly.
		inner := orderedmap.New[string, any]()
		inner.Set("type", "AdaptiveCard")
		writeContainers(inner, n)
		doc.Set(envelope, inner)
		return doc
	}

	writeContainers(doc, n)
	return doc
}

func writeAttrs(doc *orderedmap.OrderedMap[string, any], n *domain.Node) {
	for pair := n.Attrs().Oldest(); pair != nil; pair = pair.Next() {
		if ref, ok := pair.Value.(*domain.Node); ok {
			doc.Set(pair.Key, serializeNode(ref))
			continue
		}
		doc.Set(pair.Key, pair.Value)
	}
}

func writeContainers(doc *orderedmap.OrderedMap[string, any], n *domain.Node) {
	shape := n.Shape()
	if shape.ItemsField != "" {
		doc.Set(shape.ItemsField, serializeChildren(n.Items()))
	}
	if shape.ActionsField != "" {
		doc.Set(shape.ActionsField, serializeChildren(n.Actions()))
	}
}

func serializeChildren(children []*domain.Node) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		out = append(out, serializeNode(child))
	}
	return out
}
