package catalog

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in Adaptive Card catalog. The catalog is built
// once and shared; callers needing custom kinds should Register them on a
// catalog of their own (see New).
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
		for _, def := range builtinDefinitions() {
			// Register only fails on an empty kind, which the
			// builtin table never produces.
			_ = defaultCatalog.Register(def)
		}
	})
	return defaultCatalog
}

// widthType accepts the Column width forms: "auto", "stretch", a pixel string
// or a relative numeric weight.
func widthType() Type {
	str := String()
	num := Number()
	return Custom("string|number", func(v any) error {
		if str.Validate(v) == nil {
			return nil
		}
		return num.Validate(v)
	})
}

// anyType accepts any value. Used for free-form payloads like Action.Submit
// data.
func anyType() Type {
	return Custom("any", func(any) error { return nil })
}

// builtinDefinitions returns the Adaptive Card element set. Container field
// names and translatable attribute lists follow the card schema; layout
// attributes common to all body elements (spacing, separator, id) are
// declared where callers typically set them and pass through verbatim
// elsewhere.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			Kind:         "AdaptiveCard",
			ItemsField:   "body",
			ActionsField: "actions",
			Attributes: Schema{
				"fallbackText": String(),
				"lang":         String(),
				"speak":        String(),
			},
		},
		{
			Kind:       "Container",
			ItemsField: "items",
			Attributes: Schema{
				"id":           String(),
				"style":        String(),
				"spacing":      String(),
				"separator":    Bool(),
				"selectAction": NodeRef(),
			},
		},
		{
			Kind:       "ColumnSet",
			ItemsField: "columns",
			Attributes: Schema{
				"id":           String(),
				"spacing":      String(),
				"separator":    Bool(),
				"selectAction": NodeRef(),
			},
		},
		{
			Kind:       "Column",
			ItemsField: "items",
			Attributes: Schema{
				"id":           String(),
				"width":        widthType(),
				"style":        String(),
				"separator":    Bool(),
				"selectAction": NodeRef(),
			},
		},
		{
			Kind:         "TextBlock",
			Translatable: []string{"text"},
			Attributes: Schema{
				"text":                String(),
				"id":                  String(),
				"color":               String(),
				"fontType":            String(),
				"horizontalAlignment": String(),
				"isSubtle":            Bool(),
				"maxLines":            Number(),
				"size":                String(),
				"weight":              String(),
				"wrap":                Bool(),
				"spacing":             String(),
				"separator":           Bool(),
			},
		},
		{
			Kind:       "RichTextBlock",
			ItemsField: "inlines",
			Attributes: Schema{
				"id":                  String(),
				"horizontalAlignment": String(),
			},
		},
		{
			Kind:         "TextRun",
			Translatable: []string{"text"},
			Attributes: Schema{
				"text":          String(),
				"color":         String(),
				"highlight":     Bool(),
				"isSubtle":      Bool(),
				"italic":        Bool(),
				"size":          String(),
				"strikethrough": Bool(),
				"weight":        String(),
			},
		},
		{
			Kind: "Image",
			Attributes: Schema{
				"url":                 String(),
				"id":                  String(),
				"altText":             String(),
				"backgroundColor":     String(),
				"height":              String(),
				"horizontalAlignment": String(),
				"selectAction":        NodeRef(),
				"size":                String(),
				"style":               String(),
				"width":               String(),
			},
		},
		{
			Kind:       "ImageSet",
			ItemsField: "images",
			Attributes: Schema{
				"id":        String(),
				"imageSize": String(),
			},
		},
		{
			Kind:       "FactSet",
			ItemsField: "facts",
			Attributes: Schema{
				"id": String(),
			},
		},
		{
			Kind:         "Fact",
			Translatable: []string{"title", "value"},
			Attributes: Schema{
				"title": String(),
				"value": String(),
			},
		},
		{
			Kind:       "Media",
			ItemsField: "sources",
			Attributes: Schema{
				"id":      String(),
				"poster":  String(),
				"altText": String(),
			},
		},
		{
			Kind: "MediaSource",
			Attributes: Schema{
				"mimeType": String(),
				"url":      String(),
			},
		},
		{
			Kind:         "ActionSet",
			ActionsField: "actions",
			Attributes: Schema{
				"id": String(),
			},
		},
		{
			Kind:         "Input.Text",
			Translatable: []string{"title", "placeholder", "value"},
			Attributes: Schema{
				"id":          String(),
				"isMultiline": Bool(),
				"maxLength":   Number(),
				"placeholder": String(),
				"value":       String(),
			},
		},
		{
			Kind:         "Input.Number",
			Translatable: []string{"placeholder"},
			Attributes: Schema{
				"id":          String(),
				"max":         Number(),
				"min":         Number(),
				"placeholder": String(),
				"value":       Number(),
			},
		},
		{
			Kind: "Input.Date",
			Attributes: Schema{
				"id":    String(),
				"max":   String(),
				"min":   String(),
				"value": String(),
			},
		},
		{
			Kind: "Input.Time",
			Attributes: Schema{
				"id":    String(),
				"max":   String(),
				"min":   String(),
				"value": String(),
			},
		},
		{
			Kind:         "Input.Toggle",
			Translatable: []string{"title"},
			Attributes: Schema{
				"id":       String(),
				"title":    String(),
				"value":    String(),
				"valueOff": String(),
				"valueOn":  String(),
			},
		},
		{
			Kind:       "Input.ChoiceSet",
			ItemsField: "choices",
			Attributes: Schema{
				"id":            String(),
				"isMultiSelect": Bool(),
				"style":         String(),
				"value":         String(),
			},
		},
		{
			Kind:         "Input.Choice",
			Translatable: []string{"title", "value"},
			Attributes: Schema{
				"title": String(),
				"value": String(),
			},
		},
		{
			Kind: "TargetElement",
			Attributes: Schema{
				"elementId": String(),
				"isVisible": Bool(),
			},
		},
		{
			Kind:         "Action.OpenUrl",
			ActionFamily: true,
			Translatable: []string{"title"},
			Attributes: Schema{
				"url":     String(),
				"title":   String(),
				"iconUrl": String(),
				"style":   String(),
			},
		},
		{
			Kind:         "Action.Submit",
			ActionFamily: true,
			Translatable: []string{"title"},
			Attributes: Schema{
				"title":   String(),
				"data":    anyType(),
				"iconUrl": String(),
				"style":   String(),
			},
		},
		{
			Kind:         "Action.ShowCard",
			ActionFamily: true,
			Translatable: []string{"title"},
			ItemsField:   "body",
			ActionsField: "actions",
			Envelope:     "card",
			Attributes: Schema{
				"title":   String(),
				"iconUrl": String(),
			},
		},
		{
			Kind:         "Action.ToggleVisibility",
			ActionFamily: true,
			Translatable: []string{"title"},
			ItemsField:   "targetElements",
			Attributes: Schema{
				"title": String(),
			},
		},
	}
}
