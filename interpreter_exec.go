// interpreter_exec.go: the evaluation rules.
package pcf

func (ip *Interpreter) eval(e Expr, env *Env) (Value, error) {
	ip.stats.Steps++
	ip.depth++
	defer func() { ip.depth-- }()
	if ip.depth > ip.stats.MaxDepth {
		ip.stats.MaxDepth = ip.depth
	}
	if ip.MaxDepth > 0 && ip.depth > ip.MaxDepth {
		return Value{}, fail("recursion depth exceeded (%d)", ip.MaxDepth)
	}

	switch n := e.(type) {
	case Ident:
		return ip.lookup(n.Name, env)
	case NumLit:
		return Num(n.Value), nil
	case BoolLit:
		return Bool(n.Value), nil
	case SuccOp:
		return Succ, nil
	case PredOp:
		return Pred, nil
	case IsZeroOp:
		return IsZero, nil
	case Fn:
		return ClosureVal(n.Param, n.Body, env), nil
	case App:
		fn, err := ip.eval(n.Fn, env)
		if err != nil {
			return Value{}, err
		}
		arg, err := ip.eval(n.Arg, env)
		if err != nil {
			return Value{}, err
		}
		return ip.apply(fn, arg)
	case Rec:
		// the thunk re-creates this very binding each time name is used
		self := ThunkVal(Rec{Name: n.Name, Body: n.Body}, env)
		return ip.eval(n.Body, env.Extend(n.Name, self))
	case If:
		c, err := ip.eval(n.Cond, env)
		if err != nil {
			return Value{}, err
		}
		if c.Tag != VTBool {
			return Value{}, fail("if: condition is %s, not bool", c.Tag)
		}
		if c.Data.(bool) {
			return ip.eval(n.Then, env)
		}
		return ip.eval(n.Else, env)
	case Let:
		v, err := ip.eval(n.Value, env)
		if err != nil {
			return Value{}, err
		}
		return ip.eval(n.Body, env.Extend(n.Name, v))
	case ErrorExpr:
		return Value{}, fail("cannot evaluate parse error: %s", n.Msg)
	case nil:
		return Value{}, fail("empty expression")
	default:
		return Value{}, fail("unknown expression %T", e)
	}
}

func (ip *Interpreter) lookup(name string, env *Env) (Value, error) {
	v, ok := env.Lookup(name)
	if !ok {
		return Value{}, fail("unbound identifier %q", name)
	}
	if v.Tag != VTThunk {
		return v, nil
	}
	th := v.Data.(*Thunk)
	ip.stats.Unfoldings++
	if ip.Logger != nil {
		ip.Logger.Printf("unfold %s (depth %d)", name, ip.depth)
	}
	return ip.eval(th.Body, th.Env)
}

func (ip *Interpreter) apply(fn, arg Value) (Value, error) {
	ip.stats.Applications++
	if ip.Logger != nil {
		ip.Logger.Printf("apply %s to %s", FormatValue(fn), FormatValue(arg))
	}
	switch fn.Tag {
	case VTSucc, VTPred, VTIsZero:
		if arg.Tag != VTNum {
			return Value{}, fail("%s: argument is %s, not num", fn.Tag, arg.Tag)
		}
		n := arg.Data.(uint64)
		switch fn.Tag {
		case VTSucc:
			return Num(n + 1), nil
		case VTPred:
			if n == 0 {
				return Num(0), nil
			}
			return Num(n - 1), nil
		default:
			return Bool(n == 0), nil
		}
	case VTClosure:
		c := fn.Data.(*Closure)
		return ip.eval(c.Body, c.Env.Extend(c.Param, arg))
	default:
		return Value{}, fail("cannot apply %s", fn.Tag)
	}
}
