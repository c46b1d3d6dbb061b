// Package semantic implements the single-pass analyzer that runs between
// parsing and execution: name resolution, scope/shadowing rules, loop
// context for break/continue, const-initializer enforcement, and
// existence checks for declared type names.
package semantic

import (
	"fmt"

	"github.com/Byron-voldigoad/AST/internal/ast"
)

// SemanticError is a single analysis error with the line it was raised at.
type SemanticError struct {
	Message string
	Line    int
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Message, e.Line)
}

// scope maps a name to its presence; the boolean payload is unused beyond
// existence, matching the teacher's preference for a set-like map.
type scope map[string]bool

// Analyzer walks a Program once, accumulating every error it finds rather
// than stopping at the first.
type Analyzer struct {
	scopes        []scope
	declaredTypes map[string]bool
	inLoop        bool
	errors        []*SemanticError
}

// New constructs an Analyzer with the global scope pre-populated with the
// native bindings pf and clock, and the primitive type names seeded.
func New() *Analyzer {
	a := &Analyzer{
		declaredTypes: map[string]bool{
			"int": true, "float": true, "string": true, "bool": true, "char": true, "void": true,
		},
	}
	a.scopes = []scope{{"pf": true, "clock": true}}
	return a
}

// Analyze runs the analyzer over prog and returns every error found.
func Analyze(prog *ast.Program) []*SemanticError {
	a := New()
	for _, stmt := range prog.Statements {
		a.visitStatement(stmt)
	}
	return a.errors
}

// Errors returns every error accumulated so far.
func (a *Analyzer) Errors() []*SemanticError { return a.errors }

func (a *Analyzer) report(message string, line int) {
	a.errors = append(a.errors, &SemanticError{Message: message, Line: line})
}

func (a *Analyzer) enterScope() { a.scopes = append(a.scopes, scope{}) }
func (a *Analyzer) exitScope()  { a.scopes = a.scopes[:len(a.scopes)-1] }

func (a *Analyzer) declare(name string, line int) {
	current := a.scopes[len(a.scopes)-1]
	if current[name] {
		a.report(fmt.Sprintf("variable '%s' already declared in this scope", name), line)
		return
	}
	current[name] = true
}

func (a *Analyzer) resolve(name string) bool {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if a.scopes[i][name] {
			return true
		}
	}
	return false
}

// validateType checks only the base type name (before a trailing "[]")
// against the declared set; structural object types ("{...}") are
// accepted without deeper field validation, per the spec's explicit
// relaxation of that rule.
func (a *Analyzer) validateType(typeName string, line int) {
	if typeName == "" {
		return
	}
	base := typeName
	switch {
	case len(typeName) >= 2 && typeName[len(typeName)-2:] == "[]":
		base = typeName[:len(typeName)-2]
	case len(typeName) >= 2 && typeName[0] == '{' && typeName[len(typeName)-1] == '}':
		return
	}
	if !a.declaredTypes[base] {
		a.report(fmt.Sprintf("unknown type '%s'", typeName), line)
	}
}

// --- statements ---

func (a *Analyzer) visitStatement(stmt ast.Statement) {
	if stmt == nil {
		return
	}
	line := stmt.Line()

	switch s := stmt.(type) {
	case *ast.Block:
		a.enterScope()
		for _, inner := range s.Statements {
			a.visitStatement(inner)
		}
		a.exitScope()

	case *ast.VariableDecl:
		if s.Initializer != nil {
			a.visitExpression(s.Initializer)
		}
		if s.IsConst && s.Initializer == nil {
			a.report(fmt.Sprintf("constant '%s' must be initialized", s.Name), line)
		}
		a.declare(s.Name, line)
		if s.DeclaredType != "" {
			a.validateType(s.DeclaredType, line)
		}

	case *ast.FunctionDecl:
		a.declare(s.Name, line)
		if s.ReturnType != "" {
			a.validateType(s.ReturnType, line)
		}
		a.enterScope()
		a.visitParams(s.Params, line)
		a.visitFunctionBody(s.Body)
		a.exitScope()

	case *ast.ClassDecl:
		a.declare(s.Name, line)
		a.declaredTypes[s.Name] = true

		if s.SuperClass != nil && !a.declaredTypes[s.SuperClass.Name] {
			a.report(fmt.Sprintf("super class '%s' is not defined", s.SuperClass.Name), line)
		}

		a.enterScope()
		for _, member := range s.Members {
			switch m := member.(type) {
			case *ast.ConstructorDecl:
				a.visitConstructor(m, line)
			case *ast.FunctionDecl:
				a.visitMethod(m)
			case *ast.VariableDecl:
				a.visitStatement(m)
			default:
				a.report("invalid class member", line)
			}
		}
		a.exitScope()

	case *ast.IfStatement:
		a.visitExpression(s.Cond)
		a.visitStatement(s.Then)
		if s.Else != nil {
			a.visitStatement(s.Else)
		}

	case *ast.WhileStatement:
		wasInLoop := a.inLoop
		a.inLoop = true
		a.visitExpression(s.Cond)
		a.visitStatement(s.Body)
		a.inLoop = wasInLoop

	case *ast.ForStatement:
		wasInLoop := a.inLoop
		a.inLoop = true
		a.enterScope()
		if s.Init != nil {
			a.visitStatement(s.Init)
		}
		if s.Cond != nil {
			a.visitExpression(s.Cond)
		}
		if s.Update != nil {
			a.visitExpression(s.Update)
		}
		a.visitStatement(s.Body)
		a.exitScope()
		a.inLoop = wasInLoop

	case *ast.BreakStatement:
		if !a.inLoop {
			a.report("'break' must be used inside a loop", line)
		}
	case *ast.ContinueStatement:
		if !a.inLoop {
			a.report("'continue' must be used inside a loop", line)
		}

	case *ast.ReturnStatement:
		if s.Value != nil {
			a.visitExpression(s.Value)
		}

	case *ast.ExpressionStatement:
		a.visitExpression(s.Expr)
	}
}

// visitFunctionBody resets in_loop entering a function body so that a
// break/continue inside a function nested within a loop is still flagged
// as outside loop context, per spec rule 4.
func (a *Analyzer) visitFunctionBody(body *ast.Block) {
	wasInLoop := a.inLoop
	a.inLoop = false
	a.visitStatement(body)
	a.inLoop = wasInLoop
}

// visitMethod analyzes a class method: it declares the method name in the
// class scope like any other FunctionDecl, but its own parameter scope
// also carries the implicit `this` binding the interpreter supplies to
// every method invocation.
func (a *Analyzer) visitMethod(fn *ast.FunctionDecl) {
	line := fn.Line()
	a.declare(fn.Name, line)
	if fn.ReturnType != "" {
		a.validateType(fn.ReturnType, line)
	}
	a.enterScope()
	a.scopes[len(a.scopes)-1]["this"] = true
	a.visitParams(fn.Params, line)
	a.visitFunctionBody(fn.Body)
	a.exitScope()
}

func (a *Analyzer) visitParams(params []ast.Param, line int) {
	for _, p := range params {
		a.declare(p.Name, line)
		if p.Type != "" {
			a.validateType(p.Type, line)
		}
	}
}

// visitConstructor opens one scope for the constructor's parameters (and
// implicit `this` binding), matching the runtime environment the
// interpreter creates for every constructor call.
func (a *Analyzer) visitConstructor(ctor *ast.ConstructorDecl, classLine int) {
	a.enterScope()
	a.scopes[len(a.scopes)-1]["this"] = true
	a.visitParams(ctor.Params, classLine)
	a.visitFunctionBody(ctor.Body)
	a.exitScope()
}

// --- expressions ---

func (a *Analyzer) visitExpression(expr ast.Expression) {
	if expr == nil {
		return
	}
	line := expr.Line()

	switch e := expr.(type) {
	case *ast.BinaryOp:
		a.visitExpression(e.Left)
		a.visitExpression(e.Right)
	case *ast.UnaryOp:
		a.visitExpression(e.Operand)
	case *ast.Literal:
		// nothing to check
	case *ast.Identifier:
		if !a.resolve(e.Name) {
			a.report(fmt.Sprintf("undefined variable '%s'", e.Name), line)
		}
	case *ast.Assignment:
		a.visitExpression(e.Value)
		switch target := e.Target.(type) {
		case *ast.Identifier:
			if !a.resolve(target.Name) {
				a.report(fmt.Sprintf("undefined variable '%s'", target.Name), line)
			}
		case *ast.MemberAccess, *ast.IndexAccess:
			a.visitExpression(target)
		default:
			a.report("invalid assignment target: expected identifier or member/index access", line)
		}
	case *ast.FunctionCall:
		a.visitExpression(e.Callee)
		for _, arg := range e.Arguments {
			a.visitExpression(arg)
		}
	case *ast.MemberAccess:
		a.visitExpression(e.Target)
	case *ast.IndexAccess:
		a.visitExpression(e.Target)
		a.visitExpression(e.Index)
	case *ast.ArrayLiteral:
		for _, el := range e.Elements {
			a.visitExpression(el)
		}
	case *ast.ObjectLiteral:
		for _, prop := range e.Properties {
			a.visitExpression(prop.Value)
		}
	}
}
