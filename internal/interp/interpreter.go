// Package interp is the tree-walking interpreter: it executes a Program
// directly, without ever lowering it to bytecode.
package interp

import (
	"github.com/Byron-voldigoad/AST/internal/ast"
)

// Interpreter holds all state needed for a single run: the global scope,
// the current scope pointer, accumulated output lines, and the
// structured non-local control-flow signals that replace exceptions.
//
// break/continue/return are modeled as flags checked after each
// statement rather than as panics: a loop body clears breakSignal and
// continueSignal itself, while returnSignal propagates up through every
// enclosing block until the call site that catches it.
type Interpreter struct {
	globals *Environment
	env     *Environment
	output  []string

	breakSignal    bool
	continueSignal bool
	returnSignal   bool
	returnValue    Value
}

// New constructs an Interpreter with a fresh global environment carrying
// the pf/clock native bindings.
func New() *Interpreter {
	i := &Interpreter{globals: NewEnvironment()}
	i.env = i.globals
	i.registerBuiltins()
	return i
}

// Run executes prog and returns the collected output lines. Any runtime
// error aborts execution and is appended as a final line prefixed with
// the runtime-error marker; output produced before the failure is kept.
func Run(prog *ast.Program) []string {
	i := New()
	return i.Interpret(prog)
}

// Interpret resets output and executes every top-level statement.
func (i *Interpreter) Interpret(prog *ast.Program) []string {
	i.output = nil
	for _, stmt := range prog.Statements {
		if err := i.execute(stmt); err != nil {
			i.output = append(i.output, "Runtime Error: "+err.Error())
			break
		}
		if i.returnSignal {
			// A bare top-level return has nothing to return to; treat it
			// as the end of the program rather than an error.
			break
		}
	}
	return i.output
}

// execute runs one statement in the current environment. A non-nil
// error is always a *RuntimeError.
func (i *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.env))

	case *ast.VariableDecl:
		var val Value = Null
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		i.env.Define(s.Name, val)
		return nil

	case *ast.FunctionDecl:
		s.Env = i.env
		i.env.Define(s.Name, &FunctionValue{Decl: s, Env: i.env})
		return nil

	case *ast.ClassDecl:
		return i.executeClassDecl(s)

	case *ast.IfStatement:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStatement:
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
			if i.returnSignal {
				return nil
			}
			if i.breakSignal {
				i.breakSignal = false
				return nil
			}
			if i.continueSignal {
				i.continueSignal = false
			}
		}

	case *ast.ForStatement:
		return i.executeFor(s)

	case *ast.ReturnStatement:
		var val Value = Null
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		i.returnValue = val
		i.returnSignal = true
		return nil

	case *ast.BreakStatement:
		i.breakSignal = true
		return nil

	case *ast.ContinueStatement:
		i.continueSignal = true
		return nil

	case *ast.ExpressionStatement:
		_, err := i.eval(s.Expr)
		return err
	}
	return runtimeErrorf(stmt.Line(), "unknown statement type")
}

// executeBlock runs statements in env, restoring the caller's
// environment on every exit path (normal completion, break, continue,
// return, or runtime error).
func (i *Interpreter) executeBlock(stmts []ast.Statement, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
		if i.breakSignal || i.continueSignal || i.returnSignal {
			return nil
		}
	}
	return nil
}

func (i *Interpreter) executeFor(s *ast.ForStatement) error {
	previous := i.env
	i.env = NewEnclosedEnvironment(previous)
	defer func() { i.env = previous }()

	if s.Init != nil {
		if err := i.execute(s.Init); err != nil {
			return err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
		}

		if err := i.execute(s.Body); err != nil {
			return err
		}
		if i.returnSignal {
			return nil
		}
		if i.breakSignal {
			i.breakSignal = false
			return nil
		}
		if i.continueSignal {
			i.continueSignal = false
		}

		if s.Update != nil {
			if _, err := i.eval(s.Update); err != nil {
				return err
			}
		}
	}
}
