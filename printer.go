package pcf

import (
	"fmt"
	"strconv"
	"strings"
)

/* ---------- source form ---------- */

// FormatExpr renders e as PCF source. Parsing the result gives back a tree
// equal to e, provided e holds no ErrorExpr.
//
// Parentheses are added only where juxtaposition would otherwise regroup:
// around non-atomic arguments, and around binders and conditionals in
// function position, since their bodies extend as far right as possible.
func FormatExpr(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Ident:
		b.WriteString(n.Name)
	case NumLit:
		b.WriteString(strconv.FormatUint(n.Value, 10))
	case BoolLit:
		b.WriteString(strconv.FormatBool(n.Value))
	case SuccOp:
		b.WriteString("succ")
	case PredOp:
		b.WriteString("pred")
	case IsZeroOp:
		b.WriteString("iszero")
	case Fn:
		fmt.Fprintf(b, "fn %s => ", n.Param)
		writeExpr(b, n.Body)
	case Rec:
		fmt.Fprintf(b, "rec %s => ", n.Name)
		writeExpr(b, n.Body)
	case App:
		if _, ok := n.Fn.(App); ok || isAtom(n.Fn) {
			writeExpr(b, n.Fn)
		} else {
			writeParen(b, n.Fn)
		}
		b.WriteByte(' ')
		if isAtom(n.Arg) {
			writeExpr(b, n.Arg)
		} else {
			writeParen(b, n.Arg)
		}
	case If:
		b.WriteString("if ")
		writeExpr(b, n.Cond)
		b.WriteString(" then ")
		writeExpr(b, n.Then)
		b.WriteString(" else ")
		writeExpr(b, n.Else)
	case Let:
		fmt.Fprintf(b, "let %s = ", n.Name)
		writeExpr(b, n.Value)
		b.WriteString(" in ")
		writeExpr(b, n.Body)
		b.WriteString(" end")
	case ErrorExpr:
		fmt.Fprintf(b, "<error: %s>", n.Msg)
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

func writeParen(b *strings.Builder, e Expr) {
	b.WriteByte('(')
	writeExpr(b, e)
	b.WriteByte(')')
}

/* ---------- structural form ---------- */

// FormatTree renders the shape of e, e.g. App(App(Ident(f), Ident(a)), Ident(b)).
func FormatTree(e Expr) string {
	switch n := e.(type) {
	case Ident:
		return "Ident(" + n.Name + ")"
	case NumLit:
		return "Num(" + strconv.FormatUint(n.Value, 10) + ")"
	case BoolLit:
		return "Bool(" + strconv.FormatBool(n.Value) + ")"
	case SuccOp:
		return "Succ"
	case PredOp:
		return "Pred"
	case IsZeroOp:
		return "IsZero"
	case Fn:
		return "Fn(" + n.Param + ", " + FormatTree(n.Body) + ")"
	case Rec:
		return "Rec(" + n.Name + ", " + FormatTree(n.Body) + ")"
	case App:
		return "App(" + FormatTree(n.Fn) + ", " + FormatTree(n.Arg) + ")"
	case If:
		return "If(" + FormatTree(n.Cond) + ", " + FormatTree(n.Then) + ", " + FormatTree(n.Else) + ")"
	case Let:
		return "Let(" + n.Name + ", " + FormatTree(n.Value) + ", " + FormatTree(n.Body) + ")"
	case ErrorExpr:
		return "Error(" + strconv.Quote(n.Msg) + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

/* ---------- values & tokens ---------- */

// FormatValue renders a runtime value.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return strconv.FormatUint(v.Data.(uint64), 10)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTSucc, VTPred, VTIsZero:
		return v.Tag.String()
	case VTClosure:
		c := v.Data.(*Closure)
		return "<closure fn " + c.Param + " => " + FormatExpr(c.Body) + ">"
	case VTThunk:
		th := v.Data.(*Thunk)
		if r, ok := th.Body.(Rec); ok {
			return "<thunk rec " + r.Name + ">"
		}
		return "<thunk>"
	default:
		return "<unknown>"
	}
}

// FormatTokens renders a token sequence separated by spaces.
func FormatTokens(toks []Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
