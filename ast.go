// ast.go
//
// The PCF abstract syntax tree. Expr is a closed sum: every node type lives
// in this file and implements the unexported exprNode marker, so a type
// switch over Expr in this package covers the whole language.
//
// Nodes are plain values. They are never mutated after parsing, which lets
// closures and thunks hold on to sub-trees without copying them.
package pcf

// Expr is a PCF expression node.
type Expr interface {
	exprNode()
}

// Ident is a variable reference.
type Ident struct{ Name string }

// NumLit is a natural-number constant.
type NumLit struct{ Value uint64 }

// BoolLit is a boolean constant.
type BoolLit struct{ Value bool }

// SuccOp, PredOp and IsZeroOp are the primitives referenced as values.
type (
	SuccOp   struct{}
	PredOp   struct{}
	IsZeroOp struct{}
)

// Fn is a function abstraction: fn Param => Body.
type Fn struct {
	Param string
	Body  Expr
}

// App is application by juxtaposition: Fn Arg.
type App struct {
	Fn  Expr
	Arg Expr
}

// Rec is a recursive binding: rec Name => Body, where Name denotes the
// whole Rec expression inside Body.
type Rec struct {
	Name string
	Body Expr
}

// If is a conditional.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Let is a non-recursive local binding: let Name = Value in Body end.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

// ErrorExpr is the placeholder the parser leaves where a production failed.
// Incomplete reports that the failure was caused by running out of input.
type ErrorExpr struct {
	Msg        string
	Incomplete bool
}

func (Ident) exprNode()     {}
func (NumLit) exprNode()    {}
func (BoolLit) exprNode()   {}
func (SuccOp) exprNode()    {}
func (PredOp) exprNode()    {}
func (IsZeroOp) exprNode()  {}
func (Fn) exprNode()        {}
func (App) exprNode()       {}
func (Rec) exprNode()       {}
func (If) exprNode()        {}
func (Let) exprNode()       {}
func (ErrorExpr) exprNode() {}

// isAtom reports whether e prints as a single token.
func isAtom(e Expr) bool {
	switch e.(type) {
	case Ident, NumLit, BoolLit, SuccOp, PredOp, IsZeroOp:
		return true
	}
	return false
}
