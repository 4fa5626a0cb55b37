// lexer_test.go
package pcf

import (
	"reflect"
	"testing"
)

func typesOf(tokens []Token) []TokenType {
	out := make([]TokenType, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := Lex(src)
	gotTypes := typesOf(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Keywords(t *testing.T) {
	src := "if then else true false succ pred iszero fn rec let in end"
	wantTypes(t, src, []TokenType{
		IF, THEN, ELSE, TRUE, FALSE, SUCC, PRED, ISZERO, FN, REC, LET, IN, END, EOF,
	})
}

func Test_Lexer_Identifiers_And_Numbers(t *testing.T) {
	got := wantTypes(t, "mult  x\tAccum\n42 0 007", []TokenType{ID, ID, ID, NUM, NUM, NUM, EOF})
	if got[0].Literal.(string) != "mult" || got[2].Literal.(string) != "Accum" {
		t.Fatalf("identifier literals: %v %v", got[0].Literal, got[2].Literal)
	}
	if got[3].Literal.(uint64) != 42 || got[4].Literal.(uint64) != 0 || got[5].Literal.(uint64) != 7 {
		t.Fatalf("numeral literals: %v %v %v", got[3].Literal, got[4].Literal, got[5].Literal)
	}
}

func Test_Lexer_Keyword_Prefix_Is_Identifier(t *testing.T) {
	got := wantTypes(t, "iff fnx recur ending", []TokenType{ID, ID, ID, ID, EOF})
	if got[1].Literal.(string) != "fnx" {
		t.Fatalf("want fnx, got %v", got[1].Literal)
	}
}

func Test_Lexer_Letters_Then_Digits_Split(t *testing.T) {
	got := wantTypes(t, "x1", []TokenType{ID, NUM, EOF})
	if got[0].Literal.(string) != "x" || got[1].Literal.(uint64) != 1 {
		t.Fatalf("got %v", got)
	}
}

func Test_Lexer_Punctuation(t *testing.T) {
	wantTypes(t, "(fn x => x) = y", []TokenType{LPAREN, FN, ID, ARROW, ID, RPAREN, EQUAL, ID, EOF})
	wantTypes(t, "=>=", []TokenType{ARROW, EQUAL, EOF})
	wantTypes(t, "= >", []TokenType{EQUAL, ILLEGAL})
}

func Test_Lexer_Equal_At_End_Of_Input(t *testing.T) {
	wantTypes(t, "=", []TokenType{EQUAL, EOF})
	wantTypes(t, "let x =", []TokenType{LET, ID, EQUAL, EOF})
}

func Test_Lexer_Empty_And_Whitespace(t *testing.T) {
	wantTypes(t, "", []TokenType{EOF})
	wantTypes(t, " \t\r\n ", []TokenType{EOF})
}

func Test_Lexer_Illegal_Character_Stops_Scan(t *testing.T) {
	got := wantTypes(t, "succ $ 1 2", []TokenType{SUCC, ILLEGAL})
	if got[1].Literal.(string) != "illegal character: '$'" {
		t.Fatalf("diagnostic: %q", got[1].Literal)
	}
	if err := FirstLexError(got); err == nil || err.Error() != "LEXICAL ERROR: illegal character: '$'" {
		t.Fatalf("FirstLexError: %v", err)
	}
}

func Test_Lexer_Punctuation_Between_Letter_Ranges_Is_Illegal(t *testing.T) {
	for _, src := range []string{"a_b", "x[", "f^", "`"} {
		toks := Lex(src)
		last := toks[len(toks)-1]
		if last.Type != ILLEGAL {
			t.Fatalf("%q: want ILLEGAL last, got %v", src, toks)
		}
	}
}

func Test_Lexer_Illegal_Multibyte_Rune(t *testing.T) {
	got := wantTypes(t, "λ", []TokenType{ILLEGAL})
	if got[0].Literal.(string) != "illegal character: 'λ'" || got[0].Lexeme != "λ" {
		t.Fatalf("got %#v", got[0])
	}
}

func Test_Lexer_Next_After_End_Keeps_Returning_EOF(t *testing.T) {
	l := NewLexer("x")
	l.Next()
	l.Next()
	if tok := l.Next(); tok.Type != EOF {
		t.Fatalf("want EOF, got %v", tok)
	}
}

func Test_Lexer_Token_Strings(t *testing.T) {
	got := FormatTokens(Lex("fn x => succ 7"))
	want := "fn ID(x) => succ NUM(7) EOF"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
