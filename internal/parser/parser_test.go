package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byron-voldigoad/AST/internal/ast"
	"github.com/Byron-voldigoad/AST/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, []*ParseError) {
	t.Helper()
	toks, lexErrs := lexer.Tokenize(src)
	require.Empty(t, lexErrs)
	return Parse(toks)
}

func TestParse_VariableDecl(t *testing.T) {
	prog, errs := parse(t, `var x: int = 10;`)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)

	decl, ok := prog.Statements[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "int", decl.DeclaredType)
	assert.False(t, decl.IsConst)
	lit, ok := decl.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(10), lit.Value)
}

func TestParse_ConstWithoutInitializerFails(t *testing.T) {
	_, errs := parse(t, `const PI;`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "must be initialized")
}

func TestParse_FunctionDecl(t *testing.T) {
	prog, errs := parse(t, `function add(a: int, b: int): int { return a + b; }`)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)

	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParse_ClassWithConstructorAndExtends(t *testing.T) {
	src := `
	class Animal {
		var name;
		constructor(n) { this.name = n; }
		function speak(): string { return "..."; }
	}
	class Dog extends Animal {
		function speak(): string { return "Woof"; }
	}
	`
	prog, errs := parse(t, src)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)

	animal, ok := prog.Statements[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Animal", animal.Name)
	assert.Nil(t, animal.SuperClass)
	require.Len(t, animal.Members, 3)

	dog, ok := prog.Statements[1].(*ast.ClassDecl)
	require.True(t, ok)
	require.NotNil(t, dog.SuperClass)
	assert.Equal(t, "Animal", dog.SuperClass.Name)
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	prog, errs := parse(t, `var x = 1 + 2 * 3;`)
	require.Empty(t, errs)
	decl := prog.Statements[0].(*ast.VariableDecl)
	bin := decl.Initializer.(*ast.BinaryOp)
	assert.Equal(t, "+", bin.Op)
	rhs := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, "*", rhs.Op)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog, errs := parse(t, `a = b = c;`)
	require.Empty(t, errs)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	outer := stmt.Expr.(*ast.Assignment)
	assert.Equal(t, "=", outer.Op)
	_, ok := outer.Value.(*ast.Assignment)
	assert.True(t, ok, "nested assignment should be right-associative")
}

func TestParse_LogicalAndBindsTighterThanOr(t *testing.T) {
	prog, errs := parse(t, `var x = a && b || c;`)
	require.Empty(t, errs)
	decl := prog.Statements[0].(*ast.VariableDecl)
	top := decl.Initializer.(*ast.BinaryOp)
	assert.Equal(t, "||", top.Op)
	left := top.Left.(*ast.BinaryOp)
	assert.Equal(t, "&&", left.Op)
}

func TestParse_CallMemberIndexChaining(t *testing.T) {
	prog, errs := parse(t, `var x = a.b[0](1, 2);`)
	require.Empty(t, errs)
	decl := prog.Statements[0].(*ast.VariableDecl)

	call, ok := decl.Initializer.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)

	idx, ok := call.Callee.(*ast.IndexAccess)
	require.True(t, ok)

	member, ok := idx.Target.(*ast.MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "b", member.Member.Name)
}

func TestParse_ArrayAndObjectLiterals(t *testing.T) {
	prog, errs := parse(t, `var a = [1, 2, 3]; var o = { x: 1, y: 2 };`)
	require.Empty(t, errs)

	arr := prog.Statements[0].(*ast.VariableDecl).Initializer.(*ast.ArrayLiteral)
	assert.Len(t, arr.Elements, 3)

	obj := prog.Statements[1].(*ast.VariableDecl).Initializer.(*ast.ObjectLiteral)
	require.Len(t, obj.Properties, 2)
	assert.Equal(t, "x", obj.Properties[0].Name)
}

func TestParse_InvalidAssignmentTargetFails(t *testing.T) {
	_, errs := parse(t, `1 = 2;`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "invalid assignment target")
}

func TestParse_ForStatementClauses(t *testing.T) {
	prog, errs := parse(t, `for (var i = 0; i < 10; i += 1) { pf(i); }`)
	require.Empty(t, errs)
	forStmt := prog.Statements[0].(*ast.ForStatement)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Update)
}

func TestParse_ObjectTypeAnnotation(t *testing.T) {
	prog, errs := parse(t, `var p: { x: int, y: int } = { x: 1, y: 2 };`)
	require.Empty(t, errs)
	decl := prog.Statements[0].(*ast.VariableDecl)
	assert.Equal(t, "{x:int,y:int}", decl.DeclaredType)
}

func TestParse_ArrayTypeAnnotation(t *testing.T) {
	prog, errs := parse(t, `var xs: int[] = [1, 2];`)
	require.Empty(t, errs)
	decl := prog.Statements[0].(*ast.VariableDecl)
	assert.Equal(t, "int[]", decl.DeclaredType)
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	// The first statement is broken (missing ';'), but the second
	// should still parse once synchronize() resumes at the next line.
	prog, errs := parse(t, "var x = 1\nvar y = 2;")
	require.NotEmpty(t, errs)
	require.Len(t, prog.Statements, 1)
	decl := prog.Statements[0].(*ast.VariableDecl)
	assert.Equal(t, "y", decl.Name)
}

func TestParse_BreakContinueOutsideParserScope(t *testing.T) {
	// The parser itself accepts break/continue anywhere; loop-context
	// validation is the analyzer's job, not the parser's.
	prog, errs := parse(t, `break; continue;`)
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)
	_, ok := prog.Statements[0].(*ast.BreakStatement)
	assert.True(t, ok)
}
