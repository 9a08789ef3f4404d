package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagv/core"
	"github.com/katalvlaran/diagv/render"
)

func TestNormalize_SortsSuccessorsAscending(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "d"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))

	order := []string{"a", "b", "c", "d"}
	table := render.Normalize(g, order)

	require.Len(t, table, 4)
	assert.Equal(t, []int{1, 2, 3}, table[0])
}

func TestNormalize_IsolatedNodeIsEmptyKey(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddNode("lonely"))
	require.NoError(t, g.AddEdge("a", "b"))

	order := []string{"a", "b", "lonely"}
	table := render.Normalize(g, order)

	require.Len(t, table, 3)
	assert.Empty(t, table[2])
}

func TestNormalize_PanicsOnMissingOrderMember(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b"))

	assert.Panics(t, func() {
		render.Normalize(g, []string{"a"})
	})
}
