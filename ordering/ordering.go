// Package ordering computes caller-side node orderings for the renderer:
// Original, Alphabetical, and Degree. None of these mutate the graph; each
// returns a fresh permutation of g.Nodes() for a caller to hand to
// render.Render.
package ordering

import (
	"sort"

	"github.com/katalvlaran/diagv/core"
)

// Original returns g's nodes in insertion order — the order render.RenderDefault
// already uses internally, exposed here so callers can compare it against the
// other two strategies explicitly.
// Complexity: O(n).
func Original[L comparable](g *core.Graph[L]) []L {
	return g.Nodes()
}

// Alphabetical returns g's nodes sorted ascending by their printed form.
// Complexity: O(n log n).
func Alphabetical(g *core.Graph[string]) []string {
	nodes := g.Nodes()
	sort.Strings(nodes)

	return nodes
}

// Degree returns g's nodes sorted ascending by in-degree — the count of
// nodes that have this node as a direct successor. Ties break by insertion
// order, via a stable sort over the insertion-ordered node slice.
// Complexity: O(V·(V+E)) — InDegree itself scans every successor set, and
// Degree calls it once per node; acceptable at the diagram sizes (tens of
// nodes) this is meant for.
func Degree[L comparable](g *core.Graph[L]) []L {
	nodes := g.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		return g.InDegree(nodes[i]) < g.InDegree(nodes[j])
	})

	return nodes
}
