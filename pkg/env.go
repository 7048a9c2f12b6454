package soorj

// Env is one frame of the lexical scope chain. Lookups walk towards the
// root; definitions always land in the receiver frame.
type Env struct {
	parent *Env
	table  map[string]Value
}

func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		table:  make(map[string]Value),
	}
}

// Define creates or overwrites a binding in this frame.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get resolves a name against this frame and its ancestors.
func (e *Env) Get(name string) (Value, bool) {
	if v, ok := e.table[name]; ok {
		return v, true
	}

	if e.parent != nil {
		return e.parent.Get(name)
	}

	return Value{}, false
}

// Assign updates the nearest visible binding and reports whether one was
// found. Callers that want define-on-miss handle the false case themselves.
func (e *Env) Assign(name string, v Value) bool {
	if _, ok := e.table[name]; ok {
		e.table[name] = v
		return true
	}

	if e.parent != nil {
		return e.parent.Assign(name, v)
	}

	return false
}
