package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagv/core"
	"github.com/katalvlaran/diagv/ordering"
)

func buildGraph(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("a", "b"))

	return g
}

func TestOriginal_IsInsertionOrder(t *testing.T) {
	g := buildGraph(t)
	assert.Equal(t, g.Nodes(), ordering.Original(g))
}

func TestAlphabetical_SortsAscending(t *testing.T) {
	g := buildGraph(t)
	assert.Equal(t, []string{"a", "b", "c"}, ordering.Alphabetical(g))
}

func TestDegree_SortsByInDegreeAscending(t *testing.T) {
	g := buildGraph(t)
	// in-degree: a=2 (from b,c), b=1 (from a), c=0
	got := ordering.Degree(g)
	assert.Equal(t, []string{"c", "b", "a"}, got)
}
