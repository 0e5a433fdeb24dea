package squarecalc

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of token.
	Kind TokenKind
	// Pos is the byte offset of the start of the token in the input.
	Pos int
	// Text is the source text of the token. It is empty for TokenEOF.
	Text string

	// Num is the value of a TokenNumber.
	Num float64
	// Func is the function named by a TokenFunc.
	Func FunctionKind
	// Const is the constant named by a TokenConst.
	Const ConstantKind
	// Op is the operator of a TokenOp.
	Op OpKind
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenIdent is a variable name.
	TokenIdent
	// TokenFunc is a built-in function name.
	TokenFunc
	// TokenConst is a built-in constant name.
	TokenConst
	// TokenOp is a binary operator or unary minus.
	TokenOp
	// TokenLParen and TokenRParen are parentheses.
	TokenLParen
	TokenRParen
	// TokenEOL is a newline.
	TokenEOL
	// TokenEOF indicates the end of the input.
	TokenEOF
)

var tokennames = [...]string{
	TokenNone:   "None",
	TokenNumber: "Number",
	TokenIdent:  "Ident",
	TokenFunc:   "Func",
	TokenConst:  "Const",
	TokenOp:     "Op",
	TokenLParen: "LParen",
	TokenRParen: "RParen",
	TokenEOL:    "EOL",
	TokenEOF:    "EOF",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokennames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokennames[k]
}

// OpKind is an arithmetic operator.
type OpKind int8

const (
	OpNone OpKind = iota
	Add
	Sub
	Mul
	Div
	Pow
)

// Operators contains the bytes which are operators, in OpKind order starting
// from Add.
const Operators = "+-*/^"

func (o OpKind) String() string {
	if o <= OpNone || int(o) > len(Operators) {
		return "OpKind(" + strconv.Itoa(int(o)) + ")"
	}
	return Operators[o-1 : o]
}

// Tokenize scans an entire input. The last token is always TokenEOF. If the
// input contains a character that cannot begin a token, the error is a
// *SyntaxError at its byte offset.
func Tokenize(text string) ([]Token, error) {
	l := lexer{src: text}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

// next scans the next token.
func (l *lexer) next() (Token, error) {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\v', '\f':
			l.pos++
			continue
		}
		break
	}
	tok := Token{Pos: l.pos}
	if l.pos >= len(l.src) {
		tok.Kind = TokenEOF
		return tok, nil
	}
	c := l.src[l.pos]
	switch {
	case isdigit(c), c == '.':
		return l.scanNum()
	case isletter(c):
		return l.scanIdent(), nil
	case c == '(':
		tok.Kind = TokenLParen
	case c == ')':
		tok.Kind = TokenRParen
	case c == '\n':
		tok.Kind = TokenEOL
	default:
		k := -1
		for i := 0; i < len(Operators); i++ {
			if Operators[i] == c {
				k = i
				break
			}
		}
		if k < 0 {
			r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
			return tok, &SyntaxError{Offset: l.pos, Msg: "unexpected character " + strconv.QuoteRune(r)}
		}
		tok.Kind = TokenOp
		tok.Op = OpKind(k + 1)
	}
	l.pos++
	tok.Text = l.src[tok.Pos:l.pos]
	return tok, nil
}

func (l *lexer) scanNum() (Token, error) {
	start := l.pos
	dig := l.digits()
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		if l.digits() {
			dig = true
		}
	}
	if !dig {
		return Token{}, &SyntaxError{Offset: start, Msg: "malformed number " + strconv.Quote(l.src[start:l.pos])}
	}
	// Only take an exponent if it is well-formed. Otherwise the e starts the
	// next token.
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		k := l.pos + 1
		if k < len(l.src) && (l.src[k] == '+' || l.src[k] == '-') {
			k++
		}
		if k < len(l.src) && isdigit(l.src[k]) {
			l.pos = k
			l.digits()
		}
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		return Token{}, &SyntaxError{Offset: l.pos, Msg: "malformed number " + strconv.Quote(l.src[start:l.pos+1])}
	}
	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The scan above only accepts valid float syntax.
		panic("squarecalc: scanned invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	// Out of range literals keep ParseFloat's ±Inf or denormal result; the
	// evaluator rejects the former.
	return Token{Kind: TokenNumber, Pos: start, Text: text, Num: v}, nil
}

// digits consumes a run of decimal digits and reports whether there were any.
func (l *lexer) digits() bool {
	start := l.pos
	for l.pos < len(l.src) && isdigit(l.src[l.pos]) {
		l.pos++
	}
	return l.pos > start
}

func (l *lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if !isletter(c) && !isdigit(c) && c != '_' {
			break
		}
		l.pos++
	}
	text := l.src[start:l.pos]
	if kw, ok := keywords[text]; ok {
		kw.Pos = start
		return kw
	}
	return Token{Kind: TokenIdent, Pos: start, Text: text}
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isletter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
