// lexer.go
package pcf

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	EQUAL  // "="
	ARROW  // "=>"

	// Literals & identifiers
	ID
	NUM

	// Keywords
	IF
	THEN
	ELSE
	TRUE
	FALSE
	SUCC
	PRED
	ISZERO
	FN
	REC
	LET
	IN
	END
)

var tokenNames = [...]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	LPAREN:  "(",
	RPAREN:  ")",
	EQUAL:   "=",
	ARROW:   "=>",
	ID:      "ID",
	NUM:     "NUM",
	IF:      "if",
	THEN:    "then",
	ELSE:    "else",
	TRUE:    "true",
	FALSE:   "false",
	SUCC:    "succ",
	PRED:    "pred",
	ISZERO:  "iszero",
	FN:      "fn",
	REC:     "rec",
	LET:     "let",
	IN:      "in",
	END:     "end",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a lexical token with optional literal value.
//
// Literal holds the name (string) for ID, the value (uint64) for NUM and
// the diagnostic (string) for ILLEGAL. It is nil for every other type.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
}

func (t Token) String() string {
	switch t.Type {
	case ID:
		return fmt.Sprintf("ID(%s)", t.Literal)
	case NUM:
		return fmt.Sprintf("NUM(%d)", t.Literal)
	case ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%s)", t.Literal)
	default:
		return t.Type.String()
	}
}

var keywords = map[string]TokenType{
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"true":   TRUE,
	"false":  FALSE,
	"succ":   SUCC,
	"pred":   PRED,
	"iszero": ISZERO,
	"fn":     FN,
	"rec":    REC,
	"let":    LET,
	"in":     IN,
	"end":    END,
}

// Lexer scans a PCF source string into tokens.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	done  bool
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Lex tokenizes src in one pass. See (*Lexer).Scan.
func Lex(src string) []Token {
	return NewLexer(src).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	return ch, true
}

func (l *Lexer) token(tt TokenType, lit interface{}) Token {
	tok := Token{Type: tt, Lexeme: l.src[l.start:l.cur], Literal: lit}
	l.start = l.cur
	return tok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			l.start = l.cur
			return
		}
	}
	l.start = l.cur
}

// scanIdentifier consumes [A-Za-z]* after the first letter.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlpha(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber consumes [0-9]* after the first digit and folds the run left
// to right. Overflow wraps.
func (l *Lexer) scanNumber() uint64 {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	var n uint64
	for i := l.start; i < l.cur; i++ {
		n = n*10 + uint64(l.src[i]-'0')
	}
	return n
}

// Next returns the next token. Once EOF or ILLEGAL has been returned every
// further call returns EOF.
func (l *Lexer) Next() Token {
	if l.done {
		return Token{Type: EOF}
	}
	l.skipWhitespace()
	ch, ok := l.advance()
	if !ok {
		l.done = true
		return l.token(EOF, nil)
	}

	switch ch {
	case '(':
		return l.token(LPAREN, nil)
	case ')':
		return l.token(RPAREN, nil)
	case '=':
		if b, ok := l.peek(); ok && b == '>' {
			l.advance()
			return l.token(ARROW, nil)
		}
		return l.token(EQUAL, nil)
	}

	if isDigit(ch) {
		return l.token(NUM, l.scanNumber())
	}

	if isAlpha(ch) {
		lex := l.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			return l.token(tt, nil)
		}
		return l.token(ID, lex)
	}

	// report the whole rune, not its first byte
	r, size := utf8.DecodeRuneInString(l.src[l.start:])
	l.cur = l.start + size
	l.done = true
	return l.token(ILLEGAL, fmt.Sprintf("illegal character: %q", r))
}

// Scan tokenizes the remaining source. The result ends with exactly one EOF,
// or with a single ILLEGAL token if an illegal character was met first.
func (l *Lexer) Scan() []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == ILLEGAL {
			return toks
		}
	}
}

// FirstLexError returns a *LexError for the first ILLEGAL token, or nil.
func FirstLexError(toks []Token) error {
	for _, t := range toks {
		if t.Type == ILLEGAL {
			return &LexError{Msg: t.Literal.(string)}
		}
	}
	return nil
}
