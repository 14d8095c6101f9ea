package ports

import "context"

// Translator defines how the builder reaches a batch text-translation
// collaborator. This allows the provider (Azure, a test double, a cache) to
// be decoupled from the tree walk.
type Translator interface {
	// Translate converts the source strings into the target language.
	// The result must hold exactly one translated string per input, in
	// input order. Timeout and retry policy belong to the implementation;
	// the builder treats any error as opaque failure.
	Translate(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, texts []string, targetLang string) ([]string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	return f(ctx, texts, targetLang)
}
