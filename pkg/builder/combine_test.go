package builder_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/catalog"
)

func TestCombine_RequiresAtLeastOneCard(t *testing.T) {
	_, err := builder.Combine()
	assert.Error(t, err)
}

func TestCombine_DemotesActionsIntoActionSets(t *testing.T) {
	first := builder.New()
	require.NoError(t, first.Add(mustNode(t, "TextBlock", catalog.A("text", "First body"))))
	require.NoError(t, first.Add(mustNode(t, "Action.Submit", catalog.A("title", "First action"))))

	second := builder.New()
	require.NoError(t, second.Add(mustNode(t, "TextBlock", catalog.A("text", "Second body"))))
	require.NoError(t, second.Add(mustNode(t, "Action.OpenUrl",
		catalog.A("title", "Second action"),
		catalog.A("url", "https://example.com"),
	)))

	merged, err := builder.Combine(first, second)
	require.NoError(t, err)

	doc := document(t, merged)

	// Each operand contributes its body followed by an ActionSet holding its
	// demoted actions, so ordering within an operand survives the merge.
	body := doc["body"].([]any)
	require.Len(t, body, 4)
	assert.Equal(t, "TextBlock", body[0].(map[string]any)["type"])
	assert.Equal(t, "First body", body[0].(map[string]any)["text"])
	assert.Equal(t, "ActionSet", body[1].(map[string]any)["type"])
	assert.Equal(t, "Second body", body[2].(map[string]any)["text"])
	assert.Equal(t, "ActionSet", body[3].(map[string]any)["type"])

	firstSet := body[1].(map[string]any)["actions"].([]any)
	require.Len(t, firstSet, 1)
	assert.Equal(t, "First action", firstSet[0].(map[string]any)["title"])

	// The merged root's own action container stays empty.
	assert.Empty(t, doc["actions"].([]any))
}

func TestCombine_CardWithoutActionsGetsNoActionSet(t *testing.T) {
	plain := builder.New()
	require.NoError(t, plain.Add(mustNode(t, "TextBlock", catalog.A("text", "No actions here"))))

	merged, err := builder.Combine(plain)
	require.NoError(t, err)

	body := document(t, merged)["body"].([]any)
	require.Len(t, body, 1)
	assert.Equal(t, "TextBlock", body[0].(map[string]any)["type"])
}

func TestCombine_InheritsFirstCardSettings(t *testing.T) {
	first := builder.New(
		builder.WithSchema("https://example.com/custom-schema.json"),
		builder.WithVersion("1.5"),
	)
	second := builder.New()

	merged, err := builder.Combine(first, second)
	require.NoError(t, err)

	doc := document(t, merged)
	assert.Equal(t, "https://example.com/custom-schema.json", doc["schema"])
	assert.Equal(t, "1.5", doc["version"])
}

func TestCombine_OperandsAreNotMutated(t *testing.T) {
	operand := builder.New()
	require.NoError(t, operand.Add(mustNode(t, "TextBlock", catalog.A("text", "original"))))
	require.NoError(t, operand.Add(mustNode(t, "Action.Submit", catalog.A("title", "Go"))))

	before, err := operand.JSON()
	require.NoError(t, err)

	merged, err := builder.Combine(operand, operand)
	require.NoError(t, err)

	// Mutate the merged tree; the operand must not change.
	body := merged.Root().Items()
	require.NotEmpty(t, body)
	body[0].SetAttr("text", "tampered")

	after, err := operand.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))

	// The operand still carries its action at the root, undemoted.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(after, &doc))
	assert.Len(t, doc["actions"].([]any), 1)
}

func TestCombine_FreshCursorAndCheckpoints(t *testing.T) {
	operand := builder.New()
	require.NoError(t, operand.Add(mustNode(t, "Container")))
	cp := operand.SaveLevel()

	merged, err := builder.Combine(operand)
	require.NoError(t, err)

	assert.Same(t, merged.Root(), merged.Cursor())
	assert.Error(t, merged.LoadLevel(cp), "operand checkpoints are not honored by the result")
}
