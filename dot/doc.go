// Package dot parses a small, strict subset of Graphviz DOT text into a
// *core.Graph[string] plus its node order, for callers that want to feed a
// render.Render call from a .dot file instead of building a graph by hand.
//
// Supported grammar (deliberately small):
//
//	graph      := ["strict"] "digraph" [STRING|IDENT] "{" stmt* "}"
//	stmt       := node_stmt | edge_stmt | attr_stmt
//	node_stmt  := STRING [attr_list] [";"]
//	edge_stmt  := STRING ("->" STRING)+ [attr_list] [";"]
//	attr_stmt  := ("graph"|"node"|"edge") attr_list [";"]
//	attr_list  := "[" (IDENT "=" (STRING|IDENT) [","|";"])* "]"
//
// Node IDs must be double-quoted strings (the optional graph ID may also be
// a bare identifier); subgraphs, ports
// (":port" suffixes on a node ID), and bare "key = value" statements are
// rejected with a descriptive error rather than silently accepted.
//
// Node order is resolved in two passes over the statement list. A bare
// node statement, or the "from" side of an edge pair, claims a position
// immediately; a node seen only as the "to" side of an edge pair has its
// position deferred until every statement has been scanned. A node that
// is first seen as a "to" side but later turns up as a "from" side claims
// its position at that later mention instead. Attribute statements never
// affect order.
package dot
