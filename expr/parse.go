package expr

import "github.com/nabbar/cmdshell/shellerr"

type nodeKind int

const (
	nLit nodeKind = iota
	nUnaryNot
	nUnaryNeg
	nBinary
)

type node struct {
	kind nodeKind
	op   tokenKind // for nBinary / nUnary*
	left *node
	right *node

	// literal payload, valid when kind == nLit
	num   int64
	str   string
	isStr bool
}

// parser is a recursive-descent parser over the grammar in section 4.5:
// logical -> comparison -> additive -> multiplicative -> unary -> primary.
type parser struct {
	toks     []token
	pos      int
	depth    int
	maxDepth int
}

func newParser(src string, maxDepth int) (*parser, error) {
	lx := newLexer(src)
	var toks []token
	for {
		t, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	return &parser{toks: toks, maxDepth: maxDepth}, nil
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.cur().kind != k {
		return newParseErr(p.cur().off, "expected %s", what)
	}
	p.advance()
	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return shellerr.New(shellerr.RecursionOverflow, "expression nesting too deep")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseExpr parses a full expression and requires the token stream be
// fully consumed (aside from the sentinel EOF).
func (p *parser) parseExpr() (*node, error) {
	n, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, newParseErr(p.cur().off, "unexpected trailing input %q", p.cur().text)
	}
	return n, nil
}

func (p *parser) parseLogical() (*node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokAnd || p.cur().kind == tokOr {
		op := p.advance().kind
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseComparison() (*node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	switch p.cur().kind {
	case tokEq, tokNe, tokLt, tokLe, tokGt, tokGe:
		op := p.advance().kind
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (*node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		op := p.advance().kind
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (*node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokStar || p.cur().kind == tokSlash {
		op := p.advance().kind
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (*node, error) {
	switch p.cur().kind {
	case tokBang:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nUnaryNot, left: operand}, nil
	case tokMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nUnaryNeg, left: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (*node, error) {
	t := p.cur()
	switch t.kind {
	case tokLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		p.advance()
		n, err := p.parseLogical()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return n, nil
	case tokNumber:
		p.advance()
		return &node{kind: nLit, num: parseDecimal(t.text)}, nil
	case tokString:
		p.advance()
		return stringLiteral(t.text), nil
	case tokIdent:
		p.advance()
		return stringLiteral(t.text), nil
	default:
		return nil, newParseErr(t.off, "expected an expression")
	}
}

func parseDecimal(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n
}

// stringLiteral builds the literal node for an identifier-like string
// term (quoted or bareword): its numeric value packs the first three
// bytes (b0<<16 | b1<<8 | b2) for ordered comparison, per section 4.5.
func stringLiteral(s string) *node {
	var b [3]byte
	copy(b[:], s)
	num := int64(b[0])<<16 | int64(b[1])<<8 | int64(b[2])
	return &node{kind: nLit, num: num, str: s, isStr: true}
}

func newParseErr(off int, format string, args ...interface{}) error {
	return shellerr.Wrap(shellerr.InvalidExpression, nil, "invalid expression at offset %d: "+format, append([]interface{}{off + 1}, args...)...)
}
