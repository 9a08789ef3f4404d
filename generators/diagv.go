// File: diagv.go
// Role: the 5-node "diagv" example graph.
package generators

import "github.com/katalvlaran/diagv/core"

// Diagv returns the canonical 5-node example graph: d->a, i->{a,g}, a->v, g->v.
// Complexity: O(1).
func Diagv() *core.Graph[string] {
	return core.FromHeads([]core.Heads[string]{
		{Node: "d", To: []string{"a"}},
		{Node: "i", To: []string{"a", "g"}},
		{Node: "a", To: []string{"v"}},
		{Node: "g", To: []string{"v"}},
	})
}
