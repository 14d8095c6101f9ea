package cardwright

import (
	"log/slog"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/catalog"
	"github.com/cardwright/cardwright/pkg/domain"
	"github.com/cardwright/cardwright/pkg/ports"
)

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Card is a document under construction. See the builder package for the
// full construction API.
type Card = builder.Card

// Option configures a Card at creation time.
type Option = builder.Option

// Checkpoint is an opaque token capturing a cursor position.
type Checkpoint = builder.Checkpoint

// BatchItem is one entry of an AddBatch sequence.
type BatchItem = builder.BatchItem

// Ascend and Reset are the navigation sentinels accepted by AddBatch.
var (
	Ascend = builder.Ascend
	Reset  = builder.Reset
)

// New creates an empty card with the cursor at the root.
func New(opts ...Option) *Card {
	return builder.New(opts...)
}

// Combine merges cards into one, demoting each operand's top-level actions
// into an ActionSet so intra-card element order is preserved.
func Combine(cards ...*Card) (*Card, error) {
	return builder.Combine(cards...)
}

// N wraps a node for use in an AddBatch sequence.
func N(node *domain.Node) BatchItem {
	return builder.N(node)
}

// A is shorthand for a construction attribute.
func A(name string, value any) catalog.Attr {
	return catalog.A(name, value)
}

// WithSchema overrides the schema identifier emitted at the root.
func WithSchema(schemaURL string) Option {
	return builder.WithSchema(schemaURL)
}

// WithVersion overrides the card version emitted at the root.
func WithVersion(version string) Option {
	return builder.WithVersion(version)
}

// WithCatalog sets a custom kind catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return builder.WithCatalog(cat)
}

// WithTranslator injects the translation collaborator used by Translate.
func WithTranslator(t ports.Translator) Option {
	return builder.WithTranslator(t)
}

// WithLogger sets a custom structured logger for the card.
func WithLogger(logger *slog.Logger) Option {
	return builder.WithLogger(logger)
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return builder.WithLifecycleHooks(hooks)
}
