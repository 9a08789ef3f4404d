// File: render.go
// Role: the two public entry points, Render and RenderDefault.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diagv/core"
)

// Render lays g out against order and returns the resulting ASCII diagram.
// order must be a permutation of g's nodes; omitting a node from order is
// unspecified behavior. Render fails with ErrSelfLoop if any node in order
// is its own direct successor, or ErrLabelTooWide if any label's printed
// form exceeds MaxColWidth; on error the partial output is discarded and
// "" is returned alongside the error.
//
// Render is a pure function of (g's successor relation, order): two calls
// with equal inputs produce byte-identical output.
// Complexity: O(n²·pred) for the writer plus O(n + E log d) for Normalize,
// where pred is the O(n) worst-case cost of a single predicate evaluation.
func Render[L comparable](g *core.Graph[L], order []L) (string, error) {
	n := len(order)
	if n == 0 {
		return "", nil
	}

	names := make([]string, n)
	widths := make([]int, n)
	for i, label := range order {
		succ, err := g.Successors(label)
		if err != nil {
			panic(fmt.Sprintf("render: Render: order lists %v, which is not a node of g: %v", label, err))
		}
		for _, s := range succ {
			if s == label {
				return "", selfLoopError(fmt.Sprint(label))
			}
		}

		name := fmt.Sprint(label)
		if len(name) > MaxColWidth {
			return "", labelTooWideError(name, len(name))
		}
		names[i] = name
		widths[i] = len(name)
	}

	table := Normalize(g, order)

	var out strings.Builder
	for row := 0; row < n; row++ {
		if row != 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < n; col++ {
			out.WriteString(llGlyph(table, row, col))
			out.WriteString(lrGlyph(table, row, col))
			out.WriteString(ccGlyph(table, row, col, names[col], widths[col]))
			out.WriteString(rrGlyph(table, row, col))
		}
	}

	return out.String(), nil
}

// RenderDefault renders g using its own insertion order (g.Nodes()).
func RenderDefault[L comparable](g *core.Graph[L]) (string, error) {
	return Render(g, g.Nodes())
}
