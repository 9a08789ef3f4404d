// File: cyclic.go
// Role: the 9-node "cyclic" example graph.
package generators

import "github.com/katalvlaran/diagv/core"

// Cyclic returns the canonical 9-node cyclic example graph, numbered 0..8:
// 0->{1,4}, 2->6, 3->4, 4->8, 5->4, 6->0, 8->{2,7}. Nodes 1 and 7 are sinks.
// Complexity: O(1).
func Cyclic() *core.Graph[string] {
	return core.FromHeads([]core.Heads[string]{
		{Node: "0", To: []string{"1", "4"}},
		{Node: "1", To: nil},
		{Node: "2", To: []string{"6"}},
		{Node: "3", To: []string{"4"}},
		{Node: "4", To: []string{"8"}},
		{Node: "5", To: []string{"4"}},
		{Node: "6", To: []string{"0"}},
		{Node: "7", To: nil},
		{Node: "8", To: []string{"2", "7"}},
	})
}
