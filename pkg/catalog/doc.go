/*
Package catalog defines node kinds and constructs validated nodes from them.

A Definition declares, per kind, the recognized attributes and their types,
which attributes carry translatable text, and which containers the kind owns
(including the serialized field name of each container). The Catalog is the
only place construction-time validation happens; once built, a node carries
its structural shape and never consults the catalog again.

Basic usage:

	cat := catalog.Default()

	text, err := cat.Node("TextBlock",
	    catalog.A("text", "Hello"),
	    catalog.A("wrap", true),
	)

Attribute validation policy: attributes listed in the definition's schema are
type-checked; unknown attribute names are passed through verbatim and
reappear unchanged in serialized output. The AttrDontTranslate flag is
recognized on every kind, consumed at construction, and never serialized.

The Default catalog covers the Adaptive Card element set. Custom kinds can be
added to a fresh catalog:

	cat := catalog.New()
	_ = cat.Register(catalog.Definition{
	    Kind:       "Panel",
	    ItemsField: "items",
	    Attributes: catalog.Schema{"title": catalog.String()},
	})
*/
package catalog
