// parser.go — recursive-descent parser for PCF.
//
// The parser works directly on token slices: every production takes the
// remaining tokens and returns the node it built plus what it did not
// consume, so nested parses compose by threading the slice through.
//
// Grammar (one token of lookahead):
//
//	expr  := atom atom*                    // juxtaposition, left-assoc
//	atom  := ID | NUM | true | false | succ | pred | iszero
//	       | fn ID => expr
//	       | rec ID => expr
//	       | ( expr )
//	       | if expr then expr else expr
//	       | let ID = expr in expr end
//
// Juxtaposition stops, without consuming, at ) => then else in end and EOF.
//
// Errors
// ------
// A failed production yields an ErrorExpr and an empty remainder. Every
// production that receives an ErrorExpr from a sub-parse returns it as is,
// so the first error halts the whole parse and its message is the one the
// caller sees. There is no recovery.
package pcf

// Parse parses one expression and any juxtaposed arguments following it.
// It returns the expression and the unconsumed tokens; a remainder holding
// only EOF is returned as empty.
func Parse(toks []Token) (Expr, []Token) {
	ast, rest := parseAtom(toks)
	if isError(ast) {
		return ast, nil
	}
	return parseApplication(ast, rest)
}

// ParseProgram parses a complete program. Tokens left over after the top
// level expression produce a "more input than expected" placeholder.
func ParseProgram(toks []Token) Expr {
	ast, rest := Parse(toks)
	if isError(ast) || atEnd(rest) {
		return ast
	}
	return ErrorExpr{Msg: "more input than expected: " + rest[0].String()}
}

// ParseSource lexes and parses src. On success the returned tree contains no
// ErrorExpr; otherwise the error is a *LexError or a *ParseError.
func ParseSource(src string) (Expr, error) {
	toks := Lex(src)
	if err := FirstLexError(toks); err != nil {
		return nil, err
	}
	ast := ParseProgram(toks)
	if err := FirstParseError(ast); err != nil {
		return nil, err
	}
	return ast, nil
}

// FirstParseError returns the leftmost placeholder in e as a *ParseError,
// or nil if e is free of them.
func FirstParseError(e Expr) error {
	switch n := e.(type) {
	case ErrorExpr:
		return &ParseError{Msg: n.Msg, Incomplete: n.Incomplete}
	case Fn:
		return FirstParseError(n.Body)
	case Rec:
		return FirstParseError(n.Body)
	case App:
		return firstOf(n.Fn, n.Arg)
	case If:
		return firstOf(n.Cond, n.Then, n.Else)
	case Let:
		return firstOf(n.Value, n.Body)
	}
	return nil
}

//// END_OF_PUBLIC

func firstOf(es ...Expr) error {
	for _, e := range es {
		if err := FirstParseError(e); err != nil {
			return err
		}
	}
	return nil
}

func isError(e Expr) bool {
	_, ok := e.(ErrorExpr)
	return ok
}

func atEnd(toks []Token) bool {
	return len(toks) == 0 || (len(toks) == 1 && toks[0].Type == EOF)
}

// syntaxError builds the placeholder for a production that needed more
// tokens than toks holds.
func syntaxError(msg string, toks []Token) (Expr, []Token) {
	incomplete := len(toks) == 0 || toks[0].Type == EOF
	return ErrorExpr{Msg: msg, Incomplete: incomplete}, nil
}

// expect consumes a token of type tt from the head of toks.
func expect(toks []Token, tt TokenType) ([]Token, bool) {
	if len(toks) > 0 && toks[0].Type == tt {
		return toks[1:], true
	}
	return toks, false
}

func endsApplication(tt TokenType) bool {
	switch tt {
	case RPAREN, ARROW, THEN, ELSE, IN, END, EOF:
		return true
	}
	return false
}

func parseApplication(fn Expr, toks []Token) (Expr, []Token) {
	for {
		if atEnd(toks) {
			return fn, nil
		}
		if endsApplication(toks[0].Type) {
			return fn, toks
		}
		arg, rest := parseAtom(toks)
		if isError(arg) {
			return arg, nil
		}
		fn, toks = App{Fn: fn, Arg: arg}, rest
	}
}

func parseAtom(toks []Token) (Expr, []Token) {
	if len(toks) == 0 {
		return syntaxError("unexpected end of input", toks)
	}
	tok, tail := toks[0], toks[1:]
	switch tok.Type {
	case ID:
		return Ident{Name: tok.Literal.(string)}, tail
	case NUM:
		return NumLit{Value: tok.Literal.(uint64)}, tail
	case TRUE:
		return BoolLit{Value: true}, tail
	case FALSE:
		return BoolLit{Value: false}, tail
	case SUCC:
		return SuccOp{}, tail
	case PRED:
		return PredOp{}, tail
	case ISZERO:
		return IsZeroOp{}, tail
	case FN, REC:
		return parseBinder(tok.Type, tail)
	case LPAREN:
		return parseParens(tail)
	case IF:
		return parseIf(tail)
	case LET:
		return parseLet(tail)
	case EOF:
		return syntaxError("unexpected end of input", toks)
	case ILLEGAL:
		return ErrorExpr{Msg: tok.Literal.(string)}, nil
	default:
		return ErrorExpr{Msg: "unrecognized token " + tok.String()}, nil
	}
}

// parseBinder handles the shared shape of fn and rec after the keyword.
func parseBinder(kw TokenType, toks []Token) (Expr, []Token) {
	if len(toks) == 0 || toks[0].Type != ID {
		return syntaxError("identifier expected after "+kw.String(), toks)
	}
	name := toks[0].Literal.(string)
	rest, ok := expect(toks[1:], ARROW)
	if !ok {
		return syntaxError("=> expected after "+kw.String(), rest)
	}
	body, rest := Parse(rest)
	if isError(body) {
		return body, nil
	}
	if kw == REC {
		return Rec{Name: name, Body: body}, rest
	}
	return Fn{Param: name, Body: body}, rest
}

func parseParens(toks []Token) (Expr, []Token) {
	body, rest := Parse(toks)
	if isError(body) {
		return body, nil
	}
	rest, ok := expect(rest, RPAREN)
	if !ok {
		return syntaxError("missing right paren", rest)
	}
	return body, rest
}

func parseIf(toks []Token) (Expr, []Token) {
	cond, rest := Parse(toks)
	if isError(cond) {
		return cond, nil
	}
	rest, ok := expect(rest, THEN)
	if !ok {
		return syntaxError("missing then", rest)
	}
	then, rest := Parse(rest)
	if isError(then) {
		return then, nil
	}
	rest, ok = expect(rest, ELSE)
	if !ok {
		return syntaxError("missing else", rest)
	}
	els, rest := Parse(rest)
	if isError(els) {
		return els, nil
	}
	return If{Cond: cond, Then: then, Else: els}, rest
}

func parseLet(toks []Token) (Expr, []Token) {
	if len(toks) == 0 || toks[0].Type != ID {
		return syntaxError("identifier expected after let", toks)
	}
	name := toks[0].Literal.(string)
	rest, ok := expect(toks[1:], EQUAL)
	if !ok {
		return syntaxError("= expected after let", rest)
	}
	value, rest := Parse(rest)
	if isError(value) {
		return value, nil
	}
	rest, ok = expect(rest, IN)
	if !ok {
		return syntaxError("missing in", rest)
	}
	body, rest := Parse(rest)
	if isError(body) {
		return body, nil
	}
	rest, ok = expect(rest, END)
	if !ok {
		return syntaxError("missing end", rest)
	}
	return Let{Name: name, Value: value, Body: body}, rest
}
