// errors.go: the three failure kinds of the pipeline.
//
// Every stage is fail-fast. The lexer stops at the first illegal character,
// the parser keeps the first placeholder it produced, and evaluation stops at
// the first rule that does not apply. Each surfaces as one of:
//
//	*LexError      illegal character
//	*ParseError    missing keyword/symbol, unrecognized or trailing input
//	*RuntimeError  unbound identifier, bad application, non-boolean condition
//
// Positions are not tracked, so messages carry a header and the diagnostic
// only:
//
//	PARSE ERROR: missing right paren
package pcf

import (
	"errors"
	"fmt"
)

// LexError reports an illegal character.
type LexError struct {
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR: %s", e.Msg)
}

// ParseError reports the first syntax error of a parse. Incomplete is set
// when more input could have completed the program.
type ParseError struct {
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR: %s", e.Msg)
}

// RuntimeError is the single evaluation failure. Msg is informative only;
// callers are expected to treat every RuntimeError alike.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR: %s", e.Msg)
}

// IsIncomplete reports whether err is a parse error caused by premature end
// of input, as used by the REPL to ask for another line.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

func fail(format string, args ...any) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
