package builder

import (
	"fmt"

	"github.com/cardwright/cardwright/pkg/domain"
)

// Combine merges cards into a single card, in order. To preserve intra-card
// ordering of elements, each operand's top-level actions are demoted into an
// ActionSet appended to that operand's body before the bodies are
// concatenated. Operands are deep-copied and never mutated.
//
// The merged card inherits the first card's schema, version, catalog,
// translator, logger and hooks. Its cursor starts fresh at the root, and
// checkpoints minted by the operands are not honored by the result.
func Combine(cards ...*Card) (*Card, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("combine: no cards given")
	}

	first := cards[0]
	merged := New(
		WithCatalog(first.catalog),
		WithSchema(first.schemaURL),
		WithVersion(first.version),
		WithLogger(first.logger),
		WithLifecycleHooks(first.hooks),
	)
	merged.translator = first.translator

	for pair := first.root.Attrs().Oldest(); pair != nil; pair = pair.Next() {
		merged.root.SetAttr(pair.Key, pair.Value)
	}

	for _, card := range cards {
		body := make([]*domain.Node, 0, len(card.root.Items())+1)
		for _, child := range card.root.Items() {
			body = append(body, child.Clone())
		}

		if actions := card.root.Actions(); len(actions) > 0 {
			set, err := merged.catalog.Node("ActionSet")
			if err != nil {
				return nil, fmt.Errorf("combine: %w", err)
			}
			for _, action := range actions {
				set.Attach(action.Clone(), true)
			}
			body = append(body, set)
		}

		for _, child := range body {
			merged.root.Attach(child, false)
			merged.registerSubtree(child)
		}
	}
	return merged, nil
}

func (c *Card) registerSubtree(n *domain.Node) {
	c.register(n)
	for _, child := range n.Items() {
		c.registerSubtree(child)
	}
	for _, child := range n.Actions() {
		c.registerSubtree(child)
	}
}
