package builder

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardwright/cardwright/pkg/catalog"
	"github.com/cardwright/cardwright/pkg/domain"
	"github.com/cardwright/cardwright/pkg/ports"
)

// DefaultSchema is the schema identifier emitted at the card root unless
// overridden with WithSchema.
const DefaultSchema = "http://adaptivecards.io/schemas/adaptive-card.json"

// DefaultVersion is the card version emitted at the root unless overridden
// with WithVersion.
const DefaultVersion = "1.2"

// Card is a document under construction. It owns the root node, the single
// cursor designating "the node currently receiving new children", and the
// node arena backing checkpoint tokens.
//
// A Card is built single-threaded; independent cards share no state and may
// be built concurrently with each other.
type Card struct {
	id     uuid.UUID
	root   *domain.Node
	cursor *domain.Node

	// arena records every node ever accepted (root included) in
	// acceptance order. Checkpoints index into it, so tokens stay valid
	// no matter how much the tree grows afterwards.
	arena []*domain.Node
	index map[*domain.Node]int

	schemaURL string
	version   string

	catalog    *catalog.Catalog
	translator ports.Translator
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
}

// Option defines a functional option for configuring a Card.
type Option func(*Card)

// WithSchema overrides the schema identifier emitted at the root.
func WithSchema(schemaURL string) Option {
	return func(c *Card) {
		c.schemaURL = schemaURL
	}
}

// WithVersion overrides the card version emitted at the root.
func WithVersion(version string) Option {
	return func(c *Card) {
		c.version = version
	}
}

// WithCatalog sets the kind catalog used for the root node and for Combine's
// synthesized elements. Defaults to catalog.Default().
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Card) {
		c.catalog = cat
	}
}

// WithTranslator injects the translation collaborator used by Translate.
func WithTranslator(t ports.Translator) Option {
	return func(c *Card) {
		c.translator = t
	}
}

// WithLogger sets a custom structured logger for the card.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Card) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Card) {
		c.hooks = hooks
	}
}

// New creates an empty card. The root is an AdaptiveCard node with both
// containers present and empty, and the cursor starts there.
func New(opts ...Option) *Card {
	c := &Card{
		id:        uuid.New(),
		schemaURL: DefaultSchema,
		version:   DefaultVersion,
		index:     make(map[*domain.Node]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// The root kind is part of the default catalog, so construction
	// cannot fail here.
	c.root = c.catalog.MustNode("AdaptiveCard")
	c.cursor = c.root
	c.register(c.root)
	return c
}

// ID returns the card's unique identity. Checkpoints are bound to it.
func (c *Card) ID() string { return c.id.String() }

// Root returns the root node of the document tree.
func (c *Card) Root() *domain.Node { return c.root }

// Cursor returns the node currently receiving new children.
func (c *Card) Cursor() *domain.Node { return c.cursor }

// Catalog returns the kind catalog the card was configured with.
func (c *Card) Catalog() *catalog.Catalog { return c.catalog }

// Node constructs a node via the card's catalog. Shorthand for
// c.Catalog().Node(kind, attrs...).
func (c *Card) Node(kind string, attrs ...catalog.Attr) (*domain.Node, error) {
	return c.catalog.Node(kind, attrs...)
}

func (c *Card) register(n *domain.Node) {
	if _, ok := c.index[n]; ok {
		return
	}
	c.index[n] = len(c.arena)
	c.arena = append(c.arena, n)
}

func (c *Card) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		CardID:    c.id.String(),
	}
}

func (c *Card) emitNodeAdded(node *domain.Node, container string) {
	if c.hooks.OnNodeAdded == nil {
		return
	}
	c.hooks.OnNodeAdded(context.Background(), &domain.NodeEvent{
		EventBase:  c.base(domain.EventNodeAdded),
		Kind:       node.Kind(),
		Container:  container,
		Composite:  node.IsComposite(),
		TargetKind: c.cursor.Kind(),
	})
}

func (c *Card) emitCursorMoved(cause string) {
	if c.hooks.OnCursorMoved == nil {
		return
	}
	c.hooks.OnCursorMoved(context.Background(), &domain.CursorEvent{
		EventBase: c.base(domain.EventCursorMoved),
		Kind:      c.cursor.Kind(),
		Cause:     cause,
	})
}

func (c *Card) emitTranslate(ctx context.Context, lang string, batch int, isErr bool) {
	if c.hooks.OnTranslate == nil {
		return
	}
	c.hooks.OnTranslate(ctx, &domain.TranslateEvent{
		EventBase: c.base(domain.EventTranslate),
		Language:  lang,
		BatchSize: batch,
		IsError:   isErr,
	})
}
