// Package core defines Graph, a thread-safe directed successor relation
// over an arbitrary comparable label type.
//
// A Graph tracks an insertion-ordered list of labels and, for each label,
// the set of its direct successors. It exposes no weights, no undirected
// edges, and no parallel-edge bookkeeping: the render package (and every
// caller of it) only ever needs "does x point at y", nothing more.
//
// Mutations are guarded by a single sync.RWMutex (mu). Reads that only
// need a point-in-time snapshot (Nodes, Successors, InDegree) take a read
// lock; AddNode/AddEdge take a write lock.
//
//	go get github.com/katalvlaran/diagv/core
package core
