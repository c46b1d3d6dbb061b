package interp

import (
	"github.com/Byron-voldigoad/AST/internal/ast"
)

// executeClassDecl resolves the optional superclass, splits members into
// fields/methods/constructor, and defines the resulting descriptor in
// the current environment. Methods close over the same environment the
// class itself closes over, so a method can reference names declared
// alongside the class.
func (i *Interpreter) executeClassDecl(decl *ast.ClassDecl) error {
	var super *ClassValue
	if decl.SuperClass != nil {
		v, ok := i.env.Get(decl.SuperClass.Name)
		if !ok {
			return runtimeErrorf(decl.Line(), "undefined super class '%s'", decl.SuperClass.Name)
		}
		super, ok = v.(*ClassValue)
		if !ok {
			return runtimeErrorf(decl.Line(), "'%s' is not a class", decl.SuperClass.Name)
		}
	}

	class := &ClassValue{
		Name:    decl.Name,
		Super:   super,
		Methods: map[string]*ast.FunctionDecl{},
		Env:     i.env,
	}

	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.ConstructorDecl:
			class.Constructor = m
		case *ast.FunctionDecl:
			class.Methods[m.Name] = m
		case *ast.VariableDecl:
			class.Fields = append(class.Fields, m)
		}
	}

	i.env.Define(decl.Name, class)
	return nil
}

// instantiate allocates a fresh instance, applies field initializers
// declared on the class and its superclasses (the nearest declaration of
// a name wins), then runs the nearest constructor (if any) with `this`
// bound to the new instance.
func (i *Interpreter) instantiate(class *ClassValue, args []Value, line int) (Value, error) {
	inst := NewInstance(class)

	for cls := class; cls != nil; cls = cls.Super {
		for _, field := range cls.Fields {
			if _, exists := inst.Fields[field.Name]; exists {
				continue
			}
			var val Value = Null
			if field.Initializer != nil {
				prevEnv := i.env
				i.env = cls.Env
				v, err := i.eval(field.Initializer)
				i.env = prevEnv
				if err != nil {
					return nil, err
				}
				val = v
			}
			inst.Fields[field.Name] = val
		}
	}

	ctor, ctorClass := findConstructor(class)
	if ctor == nil {
		if len(args) != 0 {
			return nil, runtimeErrorf(line, "class '%s' has no constructor but %d arguments were given", class.Name, len(args))
		}
		return inst, nil
	}

	if len(args) != len(ctor.Params) {
		return nil, runtimeErrorf(line, "expected %d constructor arguments but got %d", len(ctor.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(ctorClass.Env)
	callEnv.Define("this", inst)
	for idx, param := range ctor.Params {
		callEnv.Define(param.Name, args[idx])
	}

	result, err := i.runCallBody(ctor.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if _, isNull := result.(NullValue); !isNull {
		return nil, runtimeErrorf(line, "constructors cannot return a value")
	}
	return inst, nil
}

func findConstructor(class *ClassValue) (*ast.ConstructorDecl, *ClassValue) {
	for cls := class; cls != nil; cls = cls.Super {
		if cls.Constructor != nil {
			return cls.Constructor, cls
		}
	}
	return nil, nil
}

// callMethod binds `this` to the receiver and arguments by position over
// a fresh child of the method's defining environment.
func (i *Interpreter) callMethod(bound *BoundMethod, args []Value, line int) (Value, error) {
	if len(args) != len(bound.Method.Params) {
		return nil, runtimeErrorf(line, "expected %d arguments but got %d", len(bound.Method.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(bound.Env)
	callEnv.Define("this", bound.Receiver)
	for idx, param := range bound.Method.Params {
		callEnv.Define(param.Name, args[idx])
	}

	return i.runCallBody(bound.Method.Body, callEnv)
}
