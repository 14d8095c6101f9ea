package builder_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/catalog"
)

// document unmarshals the card for structural assertions. Ordering assertions
// work on the raw JSON string instead, since maps lose it.
func document(t *testing.T, card *builder.Card) map[string]any {
	t.Helper()
	out, err := card.JSON()
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	return doc
}

func TestSerialize_EmptyCard(t *testing.T) {
	card := builder.New()
	doc := document(t, card)

	assert.Equal(t, "AdaptiveCard", doc["type"])
	assert.Equal(t, builder.DefaultSchema, doc["schema"])
	assert.Equal(t, builder.DefaultVersion, doc["version"])

	// Declared containers serialize even when empty.
	assert.Equal(t, []any{}, doc["body"])
	assert.Equal(t, []any{}, doc["actions"])
}

func TestSerialize_ColumnLayout(t *testing.T) {
	card := builder.New(builder.WithVersion("1.4"))
	require.NoError(t, card.AddBatch(
		builder.N(mustNode(t, "TextBlock", catalog.A("text", "Header"), catalog.A("weight", "Bolder"))),
		builder.N(mustNode(t, "ColumnSet")),
		builder.N(mustNode(t, "Column")),
		builder.N(mustNode(t, "TextBlock", catalog.A("text", "Cell text"))),
		builder.Ascend,
		builder.N(mustNode(t, "Column")),
		builder.N(mustNode(t, "TextBlock", catalog.A("text", "Second"))),
	))

	doc := document(t, card)
	body := doc["body"].([]any)
	require.Len(t, body, 2)

	header := body[0].(map[string]any)
	assert.Equal(t, "TextBlock", header["type"])
	assert.Equal(t, "Header", header["text"])
	_, hasItems := header["items"]
	assert.False(t, hasItems, "leaves carry no container fields")

	set := body[1].(map[string]any)
	assert.Equal(t, "ColumnSet", set["type"])
	columns := set["columns"].([]any)
	require.Len(t, columns, 2)

	first := columns[0].(map[string]any)
	assert.Equal(t, "Column", first["type"])
	firstItems := first["items"].([]any)
	require.Len(t, firstItems, 1)
	assert.Equal(t, "Cell text", firstItems[0].(map[string]any)["text"])

	second := columns[1].(map[string]any)
	secondItems := second["items"].([]any)
	require.Len(t, secondItems, 1)
	assert.Equal(t, "Second", secondItems[0].(map[string]any)["text"])
}

func TestSerialize_KeyOrder(t *testing.T) {
	card := builder.New()
	require.NoError(t, card.Add(mustNode(t, "TextBlock",
		catalog.A("weight", "Bolder"),
		catalog.A("text", "Hello"),
		catalog.A("wrap", true),
	)))

	out, err := card.JSON()
	require.NoError(t, err)
	raw := string(out)

	// Root prefix: type tag, then schema, then version.
	assert.True(t, len(raw) > 0 && raw[0] == '{')
	assert.Contains(t, raw, `{"type":"AdaptiveCard","schema":`)

	// Attribute order inside the element is the construction order, with the
	// type tag leading.
	assert.Contains(t, raw, `{"type":"TextBlock","weight":"Bolder","text":"Hello","wrap":true}`)
}

func TestSerialize_UnsetAttributesOmitted(t *testing.T) {
	card := builder.New()
	require.NoError(t, card.Add(mustNode(t, "TextBlock", catalog.A("text", "Hi"))))

	out, err := card.JSON()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "wrap")
	assert.NotContains(t, string(out), "weight")
}

func TestSerialize_NodeValuedAttribute(t *testing.T) {
	// A selectAction attribute holds a node; it serializes as a nested
	// document, not as a container entry.
	cat := catalog.Default()
	tap := cat.MustNode("Action.OpenUrl",
		catalog.A("title", "Open"),
		catalog.A("url", "https://example.com"),
	)
	container := cat.MustNode("Container", catalog.A("selectAction", tap))

	card := builder.New()
	require.NoError(t, card.Add(container))

	doc := document(t, card)
	body := doc["body"].([]any)
	require.Len(t, body, 1)

	got := body[0].(map[string]any)
	sel := got["selectAction"].(map[string]any)
	assert.Equal(t, "Action.OpenUrl", sel["type"])
	assert.Equal(t, "https://example.com", sel["url"])

	items := got["items"].([]any)
	assert.Empty(t, items, "the attribute node never leaks into the container")
}

func TestSerialize_ShowCardEnvelope(t *testing.T) {
	card := builder.New()
	require.NoError(t, card.AddBatch(
		builder.N(mustNode(t, "Action.ShowCard", catalog.A("title", "Details"))),
		builder.N(mustNode(t, "TextBlock", catalog.A("text", "Hidden"))),
		builder.N(mustNode(t, "Action.Submit", catalog.A("title", "Confirm"))),
	))

	doc := document(t, card)
	actions := doc["actions"].([]any)
	require.Len(t, actions, 1)

	show := actions[0].(map[string]any)
	assert.Equal(t, "Action.ShowCard", show["type"])
	assert.Equal(t, "Details", show["title"])

	// Containers live inside the embedded card, not on the action itself.
	_, direct := show["body"]
	assert.False(t, direct)

	inner := show["card"].(map[string]any)
	assert.Equal(t, "AdaptiveCard", inner["type"])
	innerBody := inner["body"].([]any)
	require.Len(t, innerBody, 1)
	assert.Equal(t, "Hidden", innerBody[0].(map[string]any)["text"])
	innerActions := inner["actions"].([]any)
	require.Len(t, innerActions, 1)
	assert.Equal(t, "Confirm", innerActions[0].(map[string]any)["title"])
}

func TestSerialize_Repeatable(t *testing.T) {
	card := builder.New()
	require.NoError(t, card.Add(mustNode(t, "TextBlock", catalog.A("text", "same"))))

	a, err := card.JSON()
	require.NoError(t, err)
	b, err := card.JSON()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
