package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byron-voldigoad/AST/internal/ast"
	"github.com/Byron-voldigoad/AST/internal/lexer"
	"github.com/Byron-voldigoad/AST/internal/parser"
)

func TestToMap_NilNodeIsNil(t *testing.T) {
	assert.Nil(t, ast.ToMap(nil))
}

func TestToMap_RendersDeclarationShape(t *testing.T) {
	toks, lexErrs := lexer.Tokenize(`var x: int = 1 + 2;`)
	require.Empty(t, lexErrs)
	prog, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)

	m := ast.ToMap(prog)
	require.Equal(t, "Program", m["type"])

	stmts := m["statements"].([]any)
	require.Len(t, stmts, 1)

	decl := stmts[0].(map[string]any)
	assert.Equal(t, "VariableDecl", decl["type"])
	assert.Equal(t, "x", decl["name"])
	assert.Equal(t, "int", decl["declared_type"])
	assert.Equal(t, false, decl["is_const"])

	init := decl["initializer"].(map[string]any)
	assert.Equal(t, "BinaryOp", init["type"])
	assert.Equal(t, "+", init["op"])
}

func TestToMap_ClassDeclWithoutSuperClassHasNilField(t *testing.T) {
	toks, _ := lexer.Tokenize(`class Foo { constructor() {} }`)
	prog, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)

	m := ast.ToMap(prog)
	stmts := m["statements"].([]any)
	decl := stmts[0].(map[string]any)
	assert.Equal(t, "ClassDecl", decl["type"])
	assert.Nil(t, decl["super_class"])
}
