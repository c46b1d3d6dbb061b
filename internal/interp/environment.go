package interp

// Environment is a symbol table for variable storage and scope
// management. Nested scopes chain through outer, giving the interpreter
// lexical scoping: a lookup that misses the current frame walks outward
// until it reaches the global environment.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: map[string]Value{}}
}

// NewEnclosedEnvironment creates a child scope of outer, used for blocks,
// function/method/constructor calls, and for-loop clause scopes.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: map[string]Value{}, outer: outer}
}

// Get resolves name starting in this scope and walking outward.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define binds name in THIS scope, shadowing any outer binding of the
// same name. Used for declarations (var/const/function/class/params).
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Assign writes to the scope where name is already bound, walking
// outward to find it. Returns false if name is undefined anywhere in the
// chain; the caller turns that into a runtime error.
func (e *Environment) Assign(name string, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}
