// Package diagv renders directed graphs as ASCII box-and-line diagrams.
//
// 🚀 What is diagv?
//
//	A small, dependency-light toolkit that brings together:
//
//	  • Core primitives: a generic, thread-safe directed successor relation
//	  • A deterministic ASCII renderer: no layout heuristics, no backtracking
//	  • Node-ordering strategies: original, alphabetical, and by in-degree
//	  • A DOT-text reader and a small CLI front-end
//
// ✨ Why choose diagv?
//
//   - Deterministic    — same graph, same order, same bytes, every time
//   - Thread-safe      — built-in R/W locks guard the graph while it's built
//   - Small surface    — one algorithm, no configuration knobs to tune
//
// Everything is organized under a handful of subpackages:
//
//	core/       — Graph[L], a generic directed successor relation
//	render/     — the ASCII layout algorithm
//	ordering/   — node-order strategies callers hand to render.Render
//	generators/ — canned example graphs for demos and fixtures
//	dot/        — a strict-subset DOT text reader
//	cmd/diagv/  — a cobra-based CLI wrapping all of the above
//
// Quick example, rendering d->a, i->{a,g}, a->v, g->v in the order d,i,a,g,v:
//
//	d-----+
//	    i-+---+
//	      +-a-|---+
//	          +-g-+
//	              +-v
package diagv
