// Package render turns a directed graph plus a total order on its nodes
// into a compact ASCII diagram: a square grid whose diagonal carries the
// node labels and whose off-diagonal cells carry horizontal, vertical, and
// corner glyphs showing which nodes are direct successors of which others.
//
// The algorithm has three layers, applied in order:
//
//  1. Normalize: replace labels with their positions in the caller-supplied
//     order, producing an integer-keyed successor table (normalize.go).
//  2. Predicates: seven pure boolean questions over (table, row, col), the
//     only queries the writer asks (predicates.go).
//  3. Glyph writer: a single row-major pass over the grid that picks four
//     string fragments per cell — left-left, left-right, center, right-right —
//     from a decision tree over the predicates, with no backtracking and no
//     second pass (glyph.go, render.go).
//
// The algorithm is synchronous, single-threaded, and allocates no shared
// state: Render is safe to call concurrently from many goroutines as long
// as each call's own (graph, order) arguments are not mutated by another
// goroutine at the same time.
//
// Render([d->a, i->a, i->g, a->v, g->v], [d,i,a,g,v]) produces:
//
//	d-----+
//	    i-+---+
//	      +-a-|---+
//	          +-g-+
//	              +-v
package render
