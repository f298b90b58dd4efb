package pre

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar, precedence lowest to highest: Union ('|') binds looser than
// Shuffle ('&'), which binds looser than Concat (juxtaposition), which
// binds looser than Star ('*'). All three binary operators are left
// associative; each level is one participle struct whose first operand is
// plain and whose further operands are prefixed by the operator token.

type unionExpr struct {
	Left  *shuffleExpr   `parser:"@@"`
	Rest  []*shuffleExpr `parser:"( Union @@ )*"`
}

type shuffleExpr struct {
	Left *concatExpr   `parser:"@@"`
	Rest []*concatExpr `parser:"( Shuffle @@ )*"`
}

// Concat is one-or-more factors; there is no degenerate zero-factor
// concat anywhere in the grammar. A literal "()" denotes the empty word
// as its own atomExpr alternative below, not a concat of nothing.
type concatExpr struct {
	Factors []*starExpr `parser:"@@+"`
}

type starExpr struct {
	Atom    *atomExpr `parser:"@@"`
	Starred bool      `parser:"@(Star)?"`
}

type atomExpr struct {
	Symbol *string    `parser:"@Symbol"`
	Ident  *string    `parser:"| LBracket @Ident RBracket"`
	Empty  bool       `parser:"| @(LParen RParen)"`
	Group  *unionExpr `parser:"| LParen @@ RParen"`
}

func (u *unionExpr) toNode() *exprNode {
	n := u.Left.toNode()
	for _, r := range u.Rest {
		n = &exprNode{kind: kUnion, left: n, right: r.toNode()}
	}
	return n
}

func (s *shuffleExpr) toNode() *exprNode {
	n := s.Left.toNode()
	for _, r := range s.Rest {
		n = &exprNode{kind: kShuffle, left: n, right: r.toNode()}
	}
	return n
}

func (c *concatExpr) toNode() *exprNode {
	n := c.Factors[0].toNode()
	for _, f := range c.Factors[1:] {
		n = &exprNode{kind: kConcat, left: n, right: f.toNode()}
	}
	return n
}

func (s *starExpr) toNode() *exprNode {
	n := s.Atom.toNode()
	if s.Starred {
		n = &exprNode{kind: kStar, left: n}
	}
	return n
}

func (a *atomExpr) toNode() *exprNode {
	switch {
	case a.Symbol != nil:
		return symNode(*a.Symbol)
	case a.Ident != nil:
		return symNode(*a.Ident)
	case a.Empty:
		return &exprNode{kind: kEmpty}
	case a.Group != nil:
		return a.Group.toNode()
	default:
		panic("pre: atomExpr matched none of its alternatives")
	}
}

var preParser = participle.MustBuild[unionExpr](
	participle.Lexer(preLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// positioner is satisfied by the position-carrying errors participle
// returns when the lexer or grammar rejects input.
type positioner interface {
	Position() lexer.Position
}

func parsePRE(src string) (*exprNode, error) {
	ast, err := preParser.ParseString("", src)
	if err != nil {
		return nil, wrapParseError(src, err)
	}
	return ast.toNode(), nil
}

func wrapParseError(src string, err error) error {
	pe := &ParseError{Unexpected: err.Error(), cause: err}
	if p, ok := err.(positioner); ok {
		pos := p.Position()
		pe.Line, pe.Column, pe.Offset = pos.Line, pos.Column, pos.Offset
	}
	return pe
}
