package pcf

// Env is a persistent environment: a chain of single-binding frames. The nil
// *Env is the empty environment.
//
// Extend never mutates its receiver, so every *Env a closure or thunk holds
// keeps meaning exactly what it meant when captured, whatever is bound later
// through other references.
type Env struct {
	parent *Env
	name   string
	val    Value
}

// NewEnv returns an environment holding the given bindings, applied in
// order (later names shadow earlier ones).
func NewEnv(bindings ...Binding) *Env {
	var e *Env
	for _, b := range bindings {
		e = e.Extend(b.Name, b.Value)
	}
	return e
}

// Binding is a name/value pair for NewEnv.
type Binding struct {
	Name  string
	Value Value
}

// Extend returns a new environment binding name to v on top of e.
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{parent: e, name: name, val: v}
}

// Lookup returns the most recent binding of name.
func (e *Env) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.val, true
		}
	}
	return Value{}, false
}

// Names lists the visible names, innermost first, each once.
func (e *Env) Names() []string {
	var out []string
	seen := map[string]bool{}
	for f := e; f != nil; f = f.parent {
		if !seen[f.name] {
			seen[f.name] = true
			out = append(out, f.name)
		}
	}
	return out
}

// Len is the number of visible names.
func (e *Env) Len() int { return len(e.Names()) }
