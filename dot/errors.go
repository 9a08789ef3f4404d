// File: errors.go
// Role: sentinel errors for the dot parser, wrapped with positional context.
package dot

import "errors"

// ErrSyntax covers tokenizer/parser failures: unterminated strings,
// unexpected tokens, a graph body that never closes, and the like.
var ErrSyntax = errors.New("dot: syntax error")

// ErrUnsupported covers constructs the subset grammar explicitly rejects:
// subgraphs, ports, and bare "id = id" statements.
var ErrUnsupported = errors.New("dot: unsupported construct")

// ErrUnquotedNode covers a node ID that was not a double-quoted string.
var ErrUnquotedNode = errors.New("dot: node id must be double-quoted")
