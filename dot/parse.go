// File: parse.go
// Role: recursive-descent parser over the token stream, building a
// *core.Graph[string] plus its discovered node order.
package dot

import (
	"fmt"

	"github.com/katalvlaran/diagv/core"
)

// Parse parses DOT text s and returns the graph it describes plus its node
// order. A node's position is resolved in two passes over the statement
// list: a bare node statement, or the "from" side of an edge pair, claims a
// position immediately; a node seen only as the "to" side of an edge pair
// has its position deferred until every statement has been scanned, at
// which point deferred nodes are resolved in the order they were first
// deferred — so a node that later turns up as a "from" side claims its
// position there instead of at its earlier "to"-side mention.
func Parse(s string) (*core.Graph[string], []string, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, nil, err
	}

	p := &parser{toks: toks}
	if err := p.parseHeader(); err != nil {
		return nil, nil, err
	}
	if err := p.parseStmtList(); err != nil {
		return nil, nil, err
	}
	if err := p.expect(tokRBrace); err != nil {
		return nil, nil, err
	}
	for _, id := range p.deferred {
		p.addNode(id)
	}

	g := core.NewGraph[string]()
	for _, n := range p.order {
		_ = g.AddNode(n)
	}
	for _, e := range p.edges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g, p.order, nil
}

type parser struct {
	toks []token
	pos  int

	order    []string
	seen     map[string]bool
	deferred []string
	edges    [][2]string
}

func (p *parser) cur() token { return p.toks[p.pos] }
func (p *parser) advance()   { p.pos++ }

func (p *parser) expect(k tokenKind) error {
	if p.cur().kind != k {
		return fmt.Errorf("dot: line %d: unexpected token %q: %w", p.cur().line, p.cur().text, ErrSyntax)
	}
	p.advance()

	return nil
}

// parseHeader consumes ["strict"] "digraph" [STRING|IDENT] "{".
func (p *parser) parseHeader() error {
	if p.cur().kind == tokIdent && eqFold(p.cur().text, "strict") {
		p.advance()
	}
	if p.cur().kind != tokIdent || !eqFold(p.cur().text, "digraph") {
		return fmt.Errorf("dot: line %d: expected %q, got %q: %w", p.cur().line, "digraph", p.cur().text, ErrSyntax)
	}
	p.advance()

	if p.cur().kind == tokString || p.cur().kind == tokIdent {
		p.advance() // optional graph ID, not part of node order
	}

	return p.expect(tokLBrace)
}

// parseStmtList consumes statements until (but not including) the closing "}".
func (p *parser) parseStmtList() error {
	p.seen = make(map[string]bool)
	for {
		if p.cur().kind == tokRBrace || p.cur().kind == tokEOF {
			return nil
		}
		if err := p.parseStmt(); err != nil {
			return err
		}
		if p.cur().kind == tokSemi {
			p.advance()
		}
	}
}

func (p *parser) parseStmt() error {
	tok := p.cur()

	switch tok.kind {
	case tokLBrace:
		return fmt.Errorf("dot: line %d: subgraphs are not supported: %w", tok.line, ErrUnsupported)

	case tokIdent:
		switch {
		case eqFold(tok.text, "graph") || eqFold(tok.text, "node") || eqFold(tok.text, "edge"):
			p.advance()
			return p.skipAttrList()
		case eqFold(tok.text, "subgraph"):
			return fmt.Errorf("dot: line %d: subgraphs are not supported: %w", tok.line, ErrUnsupported)
		case p.toks[p.pos+1].kind == tokEquals:
			return fmt.Errorf("dot: line %d: bare %q = ... statements are not supported: %w", tok.line, tok.text, ErrUnsupported)
		default:
			return fmt.Errorf("dot: line %d: node id %q must be double-quoted: %w", tok.line, tok.text, ErrUnquotedNode)
		}

	case tokString:
		return p.parseNodeOrEdgeStmt()

	default:
		return fmt.Errorf("dot: line %d: unexpected token %q: %w", tok.line, tok.text, ErrSyntax)
	}
}

// parseNodeOrEdgeStmt parses STRING (":" port)? ("->" STRING (":" port)?)* [attr_list].
//
// A bare node statement (no "->" at all) claims its position immediately.
// Each hop of an edge chain claims its "from" side immediately and defers
// its "to" side, mirroring how the chain flattens into consecutive
// (from, to) pairs: "a"->"b"->"c" is the pair sequence (a,b), (b,c), so b
// is deferred by the first pair but then claims its own position
// immediately as the second pair's "from" side.
func (p *parser) parseNodeOrEdgeStmt() error {
	first, err := p.parseNodeID()
	if err != nil {
		return err
	}

	if p.cur().kind != tokArrow {
		p.addNode(first)

		return p.skipAttrList()
	}

	prev := first
	for p.cur().kind == tokArrow {
		p.advance()
		next, err := p.parseNodeID()
		if err != nil {
			return err
		}
		p.addNode(prev)
		p.deferNode(next)
		p.edges = append(p.edges, [2]string{prev, next})
		prev = next
	}

	return p.skipAttrList()
}

// parseNodeID parses STRING (":" port)?, rejecting ports.
func (p *parser) parseNodeID() (string, error) {
	tok := p.cur()
	if tok.kind == tokIdent {
		return "", fmt.Errorf("dot: line %d: node id %q must be double-quoted: %w", tok.line, tok.text, ErrUnquotedNode)
	}
	if tok.kind != tokString {
		return "", fmt.Errorf("dot: line %d: expected a node id, got %q: %w", tok.line, tok.text, ErrSyntax)
	}
	p.advance()

	if p.cur().kind == tokColon {
		return "", fmt.Errorf("dot: line %d: node ports are not supported: %w", p.cur().line, ErrUnsupported)
	}

	return tok.text, nil
}

// skipAttrList consumes zero or more "[" ... "]" attribute blocks, discarding
// their contents: attribute statements must not affect node discovery order.
func (p *parser) skipAttrList() error {
	for p.cur().kind == tokLBracket {
		p.advance()
		for p.cur().kind != tokRBracket {
			if p.cur().kind == tokEOF {
				return fmt.Errorf("dot: unterminated attribute list: %w", ErrSyntax)
			}
			p.advance()
		}
		p.advance() // consume "]"
	}

	return nil
}

func (p *parser) addNode(id string) {
	if p.seen[id] {
		return
	}
	p.seen[id] = true
	p.order = append(p.order, id)
}

// deferNode records id as a "to"-side mention, to be resolved by addNode
// only after the whole statement list has been scanned. Pushed
// unconditionally: a duplicate or already-claimed id is a harmless no-op
// once addNode runs over the deferred list.
func (p *parser) deferNode(id string) {
	p.deferred = append(p.deferred, id)
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}

	return true
}
