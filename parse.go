package squarecalc

import (
	"sort"
	"strconv"
	"strings"
)

// Expr = num | const | name | Call | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = func '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression that can be evaluated with a table of variables.
// An Expr is immutable and safe for concurrent use.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
}

// parsectx holds the state of a single parse.
type parsectx struct {
	toks []Token
	// k is the index of the next token.
	k int
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
}

// peek returns the next token without consuming it.
func (p *parsectx) peek() Token {
	return p.toks[p.k]
}

// next consumes the next token. TokenEOF is never consumed, so it is returned
// repeatedly at the end of the input.
func (p *parsectx) next() Token {
	tok := p.toks[p.k]
	if tok.Kind != TokenEOF {
		p.k++
	}
	return tok
}

// Parse parses the first expression in a token sequence. Parsing stops at the
// first TokenEOL or TokenEOF; anything after an EOL is ignored. The sequence
// must end with TokenEOF, as those from Tokenize do.
func Parse(tokens []Token) (*Expr, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: TokenEOF, Pos: endpos(tokens)})
	}
	p := parsectx{
		toks:  tokens,
		names: make(map[string]bool),
	}
	if tok := p.peek(); tok.Kind == TokenEOL || tok.Kind == TokenEOF {
		return nil, &SyntaxError{Offset: tok.Pos, Msg: "empty expression"}
	}
	n, err := parseterm(&p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := p.next(); tok.Kind {
	case TokenEOL, TokenEOF:
	default:
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// ParseString tokenizes and parses the first expression in text.
func ParseString(text string) (*Expr, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// endpos is the position just past the last token.
func endpos(tokens []Token) int {
	if len(tokens) == 0 {
		return 0
	}
	t := tokens[len(tokens)-1]
	return t.Pos + len(t.Text)
}

// parseterm parses a subexpression containing only operators more binding
// than until. It leaves the token that ended the subexpression unconsumed.
func parseterm(p *parsectx, until operator) (*node, error) {
	n, err := parselhs(p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenOp:
			prec := binop(tok.Op)
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.next()
			rhs, err := parseterm(p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.Pos, left: n, right: rhs}
		case TokenRParen, TokenEOL, TokenEOF:
			// End of subexpression. The caller decides whether it is valid.
			return n, nil
		default:
			// Adjacent terms without an operator.
			return nil, &SyntaxError{Offset: tok.Pos, Msg: "unexpected " + describe(tok) + " after operand"}
		}
	}
}

// parselhs parses the first operand of a term. Operators here are unary.
func parselhs(p *parsectx, until operator) (*node, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenNumber:
		return &node{kind: nodeNum, pos: tok.Pos, num: tok.Num}, nil
	case TokenConst:
		return &node{kind: nodeConst, pos: tok.Pos, konst: tok.Const}, nil
	case TokenIdent:
		p.names[tok.Text] = true
		return &node{kind: nodeName, pos: tok.Pos, name: tok.Text}, nil
	case TokenFunc:
		return parsecall(p, tok)
	case TokenLParen:
		return parsegroup(p, tok)
	case TokenOp:
		prec := unop(tok.Op)
		if prec.op == nodeNone {
			return nil, missing(tok)
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the enclosing operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(p, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, pos: tok.Pos, left: rhs}, nil
	default:
		return nil, missing(tok)
	}
}

// parsecall parses the parenthesized argument of a function.
func parsecall(p *parsectx, fn Token) (*node, error) {
	open := p.next()
	if open.Kind != TokenLParen {
		return nil, &SyntaxError{Offset: open.Pos, Msg: fn.Text + " requires a parenthesized argument"}
	}
	if tok := p.peek(); tok.Kind == TokenRParen {
		return nil, &SyntaxError{Offset: tok.Pos, Msg: fn.Text + " requires an argument"}
	}
	arg, err := parsegroup(p, open)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, pos: fn.Pos, fn: fn.Func, left: arg}, nil
}

// parsegroup parses the contents of a parenthesized expression, after the
// open parenthesis has been consumed, along with the close parenthesis.
func parsegroup(p *parsectx, open Token) (*node, error) {
	n, err := parseterm(p, exprprec)
	if err != nil {
		return nil, err
	}
	if end := p.next(); end.Kind != TokenRParen {
		return nil, &SyntaxError{Offset: end.Pos, Msg: "unbalanced parenthesis: ( at position " + strconv.Itoa(open.Pos) + " is not closed"}
	}
	return n, nil
}

// missing returns an error for a token found where an operand was expected.
func missing(tok Token) error {
	switch tok.Kind {
	case TokenEOL, TokenEOF:
		return &SyntaxError{Offset: tok.Pos, Msg: "missing operand at " + describe(tok)}
	default:
		return &SyntaxError{Offset: tok.Pos, Msg: "missing operand before " + describe(tok)}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of the expression.
func itShouldNotHaveEndedThisWay(tok Token) error {
	switch tok.Kind {
	case TokenRParen:
		return &SyntaxError{Offset: tok.Pos, Msg: "unbalanced parenthesis: ) with no matching ("}
	default:
		return &SyntaxError{Offset: tok.Pos, Msg: "unexpected " + describe(tok)}
	}
}

// describe names a token for error messages.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenEOL:
		return "end of line"
	default:
		return strings.ToLower(tok.Kind.String()) + " " + tok.Text
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// every term in parentheses.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for an operator token.
func binop(op OpKind) operator {
	switch op {
	case Add, Sub:
		return operator{1, false, binnode[op]}
	case Mul, Div:
		return operator{5, false, binnode[op]}
	case Pow:
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for an operator token. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(op OpKind) operator {
	switch op {
	case Sub:
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
