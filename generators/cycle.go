// File: cycle.go
// Role: Cycle(n) — a ring of n nodes, 0 -> 1 -> ... -> (n-1) -> 0.
//
// Contract:
//   - n >= 1 (n == 1 produces a single node pointing at itself — a
//     self loop, which Render rejects).
//   - Node IDs are decimal strings "0".."n-1", in ascending order.
//   - Edges are emitted in stable order i -> (i+1)%n for i = 0..n-1.
package generators

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/diagv/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns the n-node ring graph C_n. Returns ErrTooFewVertices if n < 1.
// Complexity: O(n).
func Cycle(n int) (*core.Graph[string], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	edges := make([][2]string, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]string{strconv.Itoa(i), strconv.Itoa((i + 1) % n)}
	}

	return core.FromEdges(edges), nil
}
