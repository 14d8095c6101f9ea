package builder

import (
	"context"
	"fmt"

	"github.com/cardwright/cardwright/pkg/domain"
)

// attrRef addresses one translatable attribute value in the tree.
type attrRef struct {
	node *domain.Node
	name string
}

// Translate rewrites every translatable text attribute in the tree into the
// target language, in place.
//
// A single pre-order walk (same order as serialization) collects the values,
// the whole batch goes to the Translator collaborator in exactly one call,
// and the response, required to be ordered and of identical length, is
// written back. Any collaborator failure or length mismatch aborts with
// domain.ErrTranslationFailure before any attribute is touched: partial
// translation is never observable.
func (c *Card) Translate(ctx context.Context, targetLang string) error {
	if c.translator == nil {
		return fmt.Errorf("%w: no translator configured", domain.ErrTranslationFailure)
	}

	refs := collectTranslatable(c.root, nil)
	if len(refs) == 0 {
		c.logger.Debug("translate: nothing to do", "lang", targetLang)
		return nil
	}

	texts := make([]string, len(refs))
	for i, ref := range refs {
		value, _ := ref.node.Attr(ref.name)
		texts[i] = value.(string)
	}

	c.logger.Debug("translate: sending batch", "lang", targetLang, "size", len(texts))
	translated, err := c.translator.Translate(ctx, texts, targetLang)
	if err != nil {
		c.emitTranslate(ctx, targetLang, len(texts), true)
		return fmt.Errorf("%w: %v", domain.ErrTranslationFailure, err)
	}
	if len(translated) != len(texts) {
		c.emitTranslate(ctx, targetLang, len(texts), true)
		return fmt.Errorf("%w: expected %d translations, got %d",
			domain.ErrTranslationFailure, len(texts), len(translated))
	}

	// The full response is in hand; only now does the tree change.
	for i, ref := range refs {
		ref.node.SetAttr(ref.name, translated[i])
	}
	c.emitTranslate(ctx, targetLang, len(texts), false)
	return nil
}

// collectTranslatable walks the subtree pre-order and appends a reference for
// every present, string-valued translatable attribute. A node with
// translation suppressed contributes none of its own attributes, but its
// subtree is still walked.
func collectTranslatable(n *domain.Node, refs []attrRef) []attrRef {
	if n.Translatable() {
		for _, name := range n.TranslatableAttrs() {
			value, ok := n.Attr(name)
			if !ok {
				continue
			}
			if _, isString := value.(string); !isString {
				continue
			}
			refs = append(refs, attrRef{node: n, name: name})
		}
	}
	for _, child := range n.Items() {
		refs = collectTranslatable(child, refs)
	}
	for _, child := range n.Actions() {
		refs = collectTranslatable(child, refs)
	}
	return refs
}
