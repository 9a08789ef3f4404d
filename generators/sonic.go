// File: sonic.go
// Role: Sonic(n) — n-1 radial "petals" around a single origin node "x1".
//
// Contract:
//   - 1 <= n <= 9.
//   - For each petal index i in 2..=n: emit x1 -> "i2", then a chain
//     "ij" -> "i(j+1)" for j in 2..i, then close the petal with "ii" -> x1.
//   - Sonic(1) has no petals at all (the i-loop is empty) and therefore
//     produces the empty graph — a degenerate but intentional edge case.
package generators

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/diagv/core"
)

const (
	methodSonic   = "Sonic"
	minSonicNodes = 1
	maxSonicNodes = 9
	sonicOrigin   = "x1"
)

// Sonic returns the n-petal radial example graph. Returns ErrTooFewVertices
// if n < 1, ErrTooManyVertices if n > 9.
// Complexity: O(n²) edges (each petal i contributes O(i) edges).
func Sonic(n int) (*core.Graph[string], error) {
	if n < minSonicNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSonic, n, minSonicNodes, ErrTooFewVertices)
	}
	if n > maxSonicNodes {
		return nil, fmt.Errorf("%s: n=%d > max=%d: %w", methodSonic, n, maxSonicNodes, ErrTooManyVertices)
	}

	var edges [][2]string
	for i := 2; i <= n; i++ {
		edges = append(edges, [2]string{sonicOrigin, strconv.Itoa(i) + "2"})
		for j := 2; j < i; j++ {
			edges = append(edges, [2]string{
				strconv.Itoa(i) + strconv.Itoa(j),
				strconv.Itoa(i) + strconv.Itoa(j+1),
			})
		}
		edges = append(edges, [2]string{
			strconv.Itoa(i) + strconv.Itoa(i),
			sonicOrigin,
		})
	}

	return core.FromEdges(edges), nil
}
