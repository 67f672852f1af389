package infix

// Expr = Primary { Op Primary }
// Primary = '(' Expr ')' | '-' Primary | IdentExpr
// IdentExpr = ident | num | num name | ident '(' Expr ')'
// Op = '+' | '-' | '*' | '/'

// MaxDepth is the maximum nesting of parenthesized groups and unary operators
// that Parse accepts.
const MaxDepth = 4096

// parser holds the state of a single parse. tok is the lookahead token, and
// ok is false once the lexer has no more tokens.
type parser struct {
	scan  *lexer
	tok   string
	ok    bool
	depth int
}

// Parse parses text into an expression tree. If text is not exactly one
// valid expression, the result is nil and a *SyntaxError.
//
// Lexing stops silently at the first character which cannot start a token,
// so the remainder of the input is treated as though the input ended there.
func Parse(text string) (Expression, error) {
	p := parser{scan: lex(text)}
	p.advance()
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.ok {
		// E.g. "2 4", or a trailing close paren.
		return nil, &SyntaxError{Reason: ReasonLeftover, Token: p.tok}
	}
	return e, nil
}

// advance moves the lookahead to the next non-whitespace token.
func (p *parser) advance() {
	for {
		p.tok, p.ok = p.scan.next()
		if !p.ok || !isWhitespace(p.tok) {
			return
		}
	}
}

// prec returns the precedence of the lookahead token, if it is a binary
// operator.
func (p *parser) prec() (int, bool) {
	if !p.ok {
		return 0, false
	}
	return precedence(p.tok)
}

func (p *parser) expression() (Expression, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.climb(0, lhs)
}

// climb parses binary operators of precedence at least floor, with lhs as the
// first operand. Operators that bind more tightly than the one to their left
// are absorbed into the right operand.
func (p *parser) climb(floor int, lhs Expression) (Expression, error) {
	for {
		prec, ok := p.prec()
		if !ok || prec < floor {
			return lhs, nil
		}
		op := p.tok
		p.advance()
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		if next, ok := p.prec(); ok && next > prec {
			rhs, err = p.climb(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}
		lhs = NewBinary(lhs, op, rhs)
	}
}

func (p *parser) primary() (Expression, error) {
	if !p.ok {
		return nil, &SyntaxError{Reason: ReasonEnd}
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxDepth {
		return nil, &SyntaxError{Reason: ReasonDepth, Token: p.tok}
	}
	switch p.tok {
	case "(":
		return p.parens()
	case "-":
		op := p.tok
		p.advance()
		operand, err := p.primary()
		if err != nil {
			return nil, err
		}
		return NewUnary(op, operand), nil
	}
	if isOperator(p.tok[0]) {
		return nil, &SyntaxError{Reason: ReasonOperator, Token: p.tok}
	}
	return p.identExpr()
}

// identExpr parses an identifier along with an implicit multiplication that
// follows it. A number followed by a name, like 12VAR, is a multiplication,
// as is any identifier followed by a parenthesized group. Any other pair of
// adjacent identifiers is an error.
func (p *parser) identExpr() (Expression, error) {
	id := NewIdentifier(p.tok)
	p.advance()
	if !p.ok {
		return id, nil
	}
	if isIdentifier(p.tok) {
		if !id.IsNumber() || isNumber(p.tok) {
			return nil, &SyntaxError{Reason: ReasonAdjacent, Prev: id.name, Token: p.tok}
		}
		rhs := NewIdentifier(p.tok)
		p.advance()
		return NewBinary(id, "*", rhs), nil
	}
	if p.tok == "(" {
		g, err := p.parens()
		if err != nil {
			return nil, err
		}
		return NewBinary(id, "*", g), nil
	}
	return id, nil
}

// parens parses a parenthesized group. The lookahead must be the open paren.
func (p *parser) parens() (Expression, error) {
	p.advance()
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.ok || p.tok != ")" {
		return nil, &SyntaxError{Reason: ReasonParen, Token: p.tok}
	}
	p.advance()
	return e, nil
}

// precedence gets the binding strength of a binary operator. Higher binds
// more tightly.
func precedence(op string) (int, bool) {
	switch op {
	case "+", "-":
		return 20, true
	case "*", "/":
		return 40, true
	default:
		return 0, false
	}
}

// isIdentifier reports whether tok starts with a letter or digit. Names
// starting with an underscore are not considered for implicit multiplication.
func isIdentifier(tok string) bool {
	return tok != "" && (isDigit(tok[0]) || isLetter(tok[0]))
}

// isNumber reports whether tok is a numeric literal.
func isNumber(tok string) bool {
	return tok != "" && isDigit(tok[0])
}
