// File: normalize.go
// Role: build the integer-keyed successor table the predicate layer and
// glyph writer operate on.
package render

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/diagv/core"
)

// Table is the normalized successor relation: Table[row] lists, sorted
// ascending, the column indices that are direct successors of row. Every
// index 0..len(Table)-1 is a valid row, possibly mapping to an empty slice.
//
// Realized here as a dense slice rather than a map because its key set is
// always exactly 0..n-1 — a slice is the idiomatic Go shape for that and
// avoids a map allocation per Normalize call.
type Table [][]int

// Normalize builds a Table from g and order. order must be a permutation
// of g's nodes (every label g knows about, and no others); violating that
// precondition is a programmer error. Normalize panics rather than returning
// an error when order lists a label that is not a node of g, or when a
// listed node has a successor missing from order. An omitted node that no
// listed node points at, or a duplicate label in order, is not detected.
// Complexity: O(n + E log d) — building the lookup table is O(n); sorting
// each row's successors is O(d log d).
func Normalize[L comparable](g *core.Graph[L], order []L) Table {
	pos := make(map[L]int, len(order))
	for i, label := range order {
		pos[label] = i
	}

	table := make(Table, len(order))
	for i, label := range order {
		succ, err := g.Successors(label)
		if err != nil {
			panic(fmt.Sprintf("render: Normalize: order lists %v, which is not a node of g: %v", label, err))
		}

		row := make([]int, 0, len(succ))
		for _, s := range succ {
			j, ok := pos[s]
			if !ok {
				panic(fmt.Sprintf("render: Normalize: successor %v of %v is not present in order", s, label))
			}
			row = append(row, j)
		}
		sort.Ints(row)
		table[i] = row
	}

	return table
}
