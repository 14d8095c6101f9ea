package loader_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/loader"
	"github.com/cardwright/cardwright/pkg/ports"
)

func TestParse_MappingForm(t *testing.T) {
	def, err := loader.Parse([]byte(`
version: "1.4"
schema: "https://example.com/schema.json"
steps:
  - kind: TextBlock
    attrs:
      text: Header
  - kind: ColumnSet
  - kind: Column
  - kind: TextBlock
    attrs:
      text: Cell text
  - up
  - kind: Column
  - top
  - kind: Action.Submit
    attrs:
      title: Send
`))
	require.NoError(t, err)

	assert.Equal(t, "1.4", def.Version)
	assert.Equal(t, "https://example.com/schema.json", def.Schema)
	require.Len(t, def.Steps, 8)
	assert.Equal(t, "TextBlock", def.Steps[0].Kind)
	assert.Equal(t, "up", def.Steps[4].Marker)
	assert.Equal(t, "top", def.Steps[6].Marker)
}

func TestParse_BareListForm(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: TextBlock
  attrs:
    text: Hello
- kind: Action.OpenUrl
  attrs:
    title: Open
    url: https://example.com
`))
	require.NoError(t, err)
	assert.Empty(t, def.Version)
	require.Len(t, def.Steps, 2)
}

func TestParse_AttributeOrderSurvives(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: TextBlock
  attrs:
    weight: Bolder
    text: Hello
    wrap: true
`))
	require.NoError(t, err)
	require.Len(t, def.Steps, 1)

	var names []string
	for _, attr := range def.Steps[0].Attrs {
		names = append(names, attr.Name)
	}
	assert.Equal(t, []string{"weight", "text", "wrap"}, names)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown marker", "- sideways"},
		{"unknown top-level key", "foo: bar"},
		{"element without kind", "- attrs:\n    text: x"},
		{"scalar document", `"just a string"`},
		{"attrs not a mapping", "- kind: TextBlock\n  attrs:\n    - text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestNewCard_ReplaysSteps(t *testing.T) {
	def, err := loader.Parse([]byte(`
version: "1.4"
steps:
  - kind: TextBlock
    attrs:
      text: Header
  - kind: ColumnSet
  - kind: Column
  - kind: TextBlock
    attrs:
      text: Cell text
  - up
  - kind: Column
  - kind: TextBlock
    attrs:
      text: Second
  - top
  - kind: Action.Submit
    attrs:
      title: Send
`))
	require.NoError(t, err)

	card, err := def.NewCard()
	require.NoError(t, err)

	out, err := card.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "1.4", doc["version"])

	body := doc["body"].([]any)
	require.Len(t, body, 2)
	set := body[1].(map[string]any)
	columns := set["columns"].([]any)
	require.Len(t, columns, 2)

	actions := doc["actions"].([]any)
	require.Len(t, actions, 1)
	assert.Equal(t, "Send", actions[0].(map[string]any)["title"])
}

func TestNewCard_ActionFlagForcesRouting(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: TextBlock
  action: true
  attrs:
    text: odd placement
`))
	require.NoError(t, err)

	card, err := def.NewCard()
	require.NoError(t, err)
	assert.Len(t, card.Root().Actions(), 1)
	assert.Empty(t, card.Root().Items())
}

func TestNewCard_DontTranslateFlag(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: TextBlock
  dontTranslate: true
  attrs:
    text: ACME Corp
- kind: TextBlock
  attrs:
    text: Welcome
`))
	require.NoError(t, err)

	var got []string
	translator := ports.TranslatorFunc(func(ctx context.Context, texts []string, targetLang string) ([]string, error) {
		got = texts
		return texts, nil
	})

	card, err := def.NewCard(builder.WithTranslator(translator))
	require.NoError(t, err)
	require.NoError(t, card.Translate(context.Background(), "ms"))

	assert.Equal(t, []string{"Welcome"}, got)
}

func TestNewCard_SurfacesBuildErrors(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: Container
- kind: Action.Submit
  attrs:
    title: cannot land here
`))
	require.NoError(t, err)

	_, err = def.NewCard()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestApply_ContinuesFromCursor(t *testing.T) {
	def, err := loader.Parse([]byte(`
- kind: TextBlock
  attrs:
    text: appended
`))
	require.NoError(t, err)

	card := builder.New()
	container, err := card.Node("Container")
	require.NoError(t, err)
	require.NoError(t, card.Add(container))

	require.NoError(t, def.Apply(card))
	require.Len(t, container.Items(), 1, "steps land at the current cursor, not the root")
}
