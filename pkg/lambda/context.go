package lambda

// Context is an immutable mapping from variable name to Type. The zero
// value is an empty context ready for use.
//
// Extend returns a new Context and never mutates the receiver; Infer
// relies on this to keep a binder's type from leaking outside its lexical
// scope.
type Context struct {
	bindings map[string]Type
}

// NewContext returns an empty typing context.
func NewContext() Context {
	return Context{}
}

// Lookup returns the type bound to name and whether a binding exists.
func (c Context) Lookup(name string) (Type, bool) {
	t, ok := c.bindings[name]
	return t, ok
}

// Extend returns a new Context identical to the receiver except that name
// now maps to t, shadowing any prior binding of the same name.
func (c Context) Extend(name string, t Type) Context {
	next := make(map[string]Type, len(c.bindings)+1)
	for k, v := range c.bindings {
		next[k] = v
	}
	next[name] = t
	return Context{bindings: next}
}

// Len returns the number of bindings in the context.
func (c Context) Len() int {
	return len(c.bindings)
}
