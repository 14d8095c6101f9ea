package cardwright_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwright/cardwright"
)

func TestFacade_BuildAndCombine(t *testing.T) {
	// 1. Two independent cards built through the root facade.
	welcome := cardwright.New()
	cat := welcome.Catalog()
	require.NoError(t, welcome.Add(cat.MustNode("TextBlock", cardwright.A("text", "Welcome"))))
	require.NoError(t, welcome.Add(cat.MustNode("Action.Submit", cardwright.A("title", "Accept"))))

	details := cardwright.New()
	require.NoError(t, details.Add(details.Catalog().MustNode("TextBlock", cardwright.A("text", "Details"))))

	// 2. Combine preserves per-card ordering via action demotion.
	merged, err := cardwright.Combine(welcome, details)
	require.NoError(t, err)

	body := merged.Root().Items()
	require.Len(t, body, 3)
	assert.Equal(t, "TextBlock", body[0].Kind())
	assert.Equal(t, "ActionSet", body[1].Kind())
	assert.Equal(t, "TextBlock", body[2].Kind())

	// 3. The merged card serializes like any other.
	out, err := merged.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Welcome")
	assert.Contains(t, string(out), "Details")
}

func TestFacade_CheckpointRoundTrip(t *testing.T) {
	card := cardwright.New()
	cat := card.Catalog()

	container := cat.MustNode("Container")
	require.NoError(t, card.Add(container))
	cp := card.SaveLevel()

	card.BackToTop()
	require.NoError(t, card.LoadLevel(cp))
	assert.Same(t, container, card.Cursor())
}

func TestVersionIsSet(t *testing.T) {
	assert.NotEmpty(t, cardwright.Version)
}
