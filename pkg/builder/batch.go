package builder

import "github.com/cardwright/cardwright/pkg/domain"

// BatchItem is one entry of an AddBatch sequence: either a node or a
// navigation sentinel. The sentinels are a closed enumeration; callers build
// entries with N, Ascend and Reset.
type BatchItem interface {
	isBatchItem()
}

type nodeItem struct {
	node *domain.Node
}

func (nodeItem) isBatchItem() {}

// N wraps a node for use in an AddBatch sequence.
func N(node *domain.Node) BatchItem {
	return nodeItem{node: node}
}

type marker int

func (marker) isBatchItem() {}

// Ascend moves the cursor up exactly one level, equivalent to UpOneLevel.
var Ascend BatchItem = marker(0)

// Reset moves the cursor back to the root, equivalent to BackToTop.
var Reset BatchItem = marker(1)

// AddBatch processes an ordered sequence of nodes and navigation sentinels.
// Sentinels take effect immediately, affecting where subsequent entries in
// the same batch land; nodes use the default auto-detected routing. This
// supports a flat, indentation-friendly authoring style equivalent to
// repeated Add/UpOneLevel calls.
//
// Processing stops at the first failing entry; entries accepted before it
// remain in the tree, and the failing Add itself leaves the tree unmodified.
func (c *Card) AddBatch(items ...BatchItem) error {
	for _, item := range items {
		switch it := item.(type) {
		case nodeItem:
			if err := c.Add(it.node); err != nil {
				return err
			}
		case marker:
			if it == marker(0) {
				c.UpOneLevel()
			} else {
				c.BackToTop()
			}
		}
	}
	return nil
}
