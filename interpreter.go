// interpreter.go — public API surface of the PCF evaluator.
//
// OVERVIEW
// ========
// This file holds the runtime value model and the Interpreter type. The
// evaluation rules themselves live in interpreter_exec.go.
//
// VALUES
// ------
// Value is a tagged sum. The tag determines what Data holds:
//
//	VTNum      uint64
//	VTBool     bool
//	VTSucc     nil     successor primitive
//	VTPred     nil     predecessor primitive (saturates at zero)
//	VTIsZero   nil     zero test
//	VTClosure  *Closure
//	VTThunk    *Thunk  deferred rec binding; never escapes a lookup
//
// SCOPING
// -------
// Evaluation threads a persistent *Env (env.go). A closure captures the Env
// in force where its fn was evaluated and its body always runs in an
// extension of that Env, never the caller's.
//
// RECURSION
// ---------
// `rec f => body` binds f to a thunk holding the rec expression itself and
// the Env at that point, then evaluates body. Looking f up evaluates the
// thunk, which performs the same binding again: one unfolding per use, no
// memoization, no cyclic references. Each unfolding costs host stack, so the
// Interpreter bounds nesting depth with MaxDepth.
//
// ERRORS
// ------
// Every failure is a *RuntimeError. Callers see a value or a failure and
// nothing more structured than the message.
package pcf

import (
	"log"
	"os"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNum ValueTag = iota
	VTBool
	VTSucc
	VTPred
	VTIsZero
	VTClosure
	VTThunk
)

func (t ValueTag) String() string {
	switch t {
	case VTNum:
		return "num"
	case VTBool:
		return "bool"
	case VTSucc:
		return "succ"
	case VTPred:
		return "pred"
	case VTIsZero:
		return "iszero"
	case VTClosure:
		return "closure"
	case VTThunk:
		return "thunk"
	default:
		return "<unknown>"
	}
}

// Value is the universal runtime carrier.
type Value struct {
	Tag  ValueTag
	Data any
}

// String renders v the way the driver prints results.
func (v Value) String() string { return FormatValue(v) }

// Closure is a function value.
type Closure struct {
	Param string
	Body  Expr
	Env   *Env
}

// Thunk is a deferred expression with the environment it must run in.
type Thunk struct {
	Body Expr
	Env  *Env
}

// Primitive operators as values.
var (
	Succ   = Value{Tag: VTSucc}
	Pred   = Value{Tag: VTPred}
	IsZero = Value{Tag: VTIsZero}
)

func Num(n uint64) Value { return Value{Tag: VTNum, Data: n} }
func Bool(b bool) Value  { return Value{Tag: VTBool, Data: b} }

func ClosureVal(param string, body Expr, env *Env) Value {
	return Value{Tag: VTClosure, Data: &Closure{Param: param, Body: body, Env: env}}
}

func ThunkVal(body Expr, env *Env) Value {
	return Value{Tag: VTThunk, Data: &Thunk{Body: body, Env: env}}
}

// DefaultMaxDepth bounds evaluator nesting unless PCF_MAX_DEPTH says
// otherwise. Deep enough for thousands of rec unfoldings.
const DefaultMaxDepth = 100000

// Stats counts the work done by the most recent Eval.
type Stats struct {
	Steps        int // eval calls
	Applications int // closure and primitive applications
	Unfoldings   int // thunk lookups
	MaxDepth     int // deepest nesting reached
}

// Interpreter evaluates ASTs. The zero value is not usable; use
// NewInterpreter. An Interpreter is not safe for concurrent use, but
// separate Interpreters share nothing.
type Interpreter struct {
	// MaxDepth is the nesting bound; <= 0 disables it.
	MaxDepth int
	// Logger, when set, receives a line per application and unfolding.
	Logger *log.Logger

	stats Stats
	depth int
}

// NewInterpreter returns an Interpreter with the default depth bound, or the
// one in $PCF_MAX_DEPTH when that parses as an integer.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{MaxDepth: DefaultMaxDepth}
	if s := os.Getenv("PCF_MAX_DEPTH"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			ip.MaxDepth = n
		}
	}
	return ip
}

// Eval evaluates e in env. It resets Stats.
func (ip *Interpreter) Eval(e Expr, env *Env) (Value, error) {
	ip.stats = Stats{}
	ip.depth = 0
	return ip.eval(e, env)
}

// EvalSource parses src and evaluates it in the empty environment.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	ast, err := ParseSource(src)
	if err != nil {
		return Value{}, err
	}
	return ip.Eval(ast, nil)
}

// Stats reports the counters of the last Eval.
func (ip *Interpreter) Stats() Stats { return ip.stats }

// Eval evaluates e in env with a fresh Interpreter.
func Eval(e Expr, env *Env) (Value, error) {
	return NewInterpreter().Eval(e, env)
}

// Run lexes, parses and evaluates src in the empty environment.
func Run(src string) (Value, error) {
	return NewInterpreter().EvalSource(src)
}
