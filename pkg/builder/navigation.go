package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cardwright/cardwright/pkg/domain"
)

// AddOption adjusts a single Add call.
type AddOption func(*addConfig)

type addConfig struct {
	asAction bool
	preserve bool
}

// AsAction forces routing into the target's action container, for item-family
// nodes that the caller wants placed among actions. Action-family nodes are
// routed there automatically and do not need this.
func AsAction() AddOption {
	return func(cfg *addConfig) {
		cfg.asAction = true
	}
}

// PreserveLevel keeps the cursor where it was before the Add call instead of
// descending into a composite node.
func PreserveLevel() AddOption {
	return func(cfg *addConfig) {
		cfg.preserve = true
	}
}

// Add accepts a node into the cursor's matching container.
//
// Routing follows the container rules: action-family nodes (and AsAction
// calls) go to the action container, everything else to the item container;
// a missing required container fails with domain.ErrContainerMismatch and
// leaves the tree untouched.
//
// On success the recursion policy applies: if the accepted node is composite
// the cursor descends into it, so sequential Add calls read as depth-first
// authoring; a leaf leaves the cursor unchanged.
func (c *Card) Add(node *domain.Node, opts ...AddOption) error {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	intoActions, err := route(c.cursor, node, cfg.asAction)
	if err != nil {
		return err
	}

	container := "items"
	if intoActions {
		container = "actions"
	}
	c.emitNodeAdded(node, container)

	c.cursor.Attach(node, intoActions)
	c.register(node)
	c.logger.Debug("node added",
		"kind", node.Kind(),
		"container", container,
		"target", node.Parent().Kind(),
	)

	if node.IsComposite() && !cfg.preserve {
		c.cursor = node
		c.emitCursorMoved("add")
	}
	return nil
}

// route decides which container of target accepts candidate. Validation is
// purely structural (container existence), never attribute-level.
func route(target, candidate *domain.Node, wantsAction bool) (intoActions bool, err error) {
	if wantsAction || candidate.IsActionFamily() {
		if !target.HasActionContainer() {
			return false, fmt.Errorf("%w: %s has no action container (adding %s)",
				domain.ErrContainerMismatch, target.Kind(), candidate.Kind())
		}
		return true, nil
	}
	if !target.HasItemContainer() {
		return false, fmt.Errorf("%w: %s has no item container (adding %s)",
			domain.ErrContainerMismatch, target.Kind(), candidate.Kind())
	}
	return false, nil
}

// UpOneLevel moves the cursor to its parent. At the root this is an explicit
// no-op: callers may over-ascend defensively without error.
func (c *Card) UpOneLevel() {
	parent := c.cursor.Parent()
	if parent == nil {
		return
	}
	c.cursor = parent
	c.emitCursorMoved("up")
}

// BackToTop moves the cursor directly to the root regardless of depth.
func (c *Card) BackToTop() {
	c.cursor = c.root
	c.emitCursorMoved("top")
}

// Checkpoint is an opaque token capturing a cursor position. Tokens stay
// valid through any amount of later construction, are reusable, and are only
// honored by the card that minted them.
type Checkpoint struct {
	card  uuid.UUID
	index int
}

// SaveLevel captures the current cursor position without altering it.
func (c *Card) SaveLevel() Checkpoint {
	return Checkpoint{card: c.id, index: c.index[c.cursor]}
}

// LoadLevel restores the cursor to a previously saved position. A token
// minted by another card fails with domain.ErrInvalidCheckpoint; the cursor
// never silently falls back to the root.
func (c *Card) LoadLevel(cp Checkpoint) error {
	if cp.card != c.id {
		return fmt.Errorf("%w: token belongs to another card", domain.ErrInvalidCheckpoint)
	}
	if cp.index < 0 || cp.index >= len(c.arena) {
		return fmt.Errorf("%w: unknown position %d", domain.ErrInvalidCheckpoint, cp.index)
	}
	c.cursor = c.arena[cp.index]
	c.emitCursorMoved("load")
	return nil
}
