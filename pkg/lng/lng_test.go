package lng_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byron-voldigoad/AST/pkg/lng"
)

func TestTokenize_ProducesKindsAndPositions(t *testing.T) {
	toks, errs := lng.Tokenize("var x: int = 10;")
	require.Empty(t, errs)
	require.NotEmpty(t, toks)
	snaps.MatchSnapshot(t, "tokenize_var_decl", toks)
}

func TestTokenize_NeverStopsEarlyOnLexError(t *testing.T) {
	toks, errs := lng.Tokenize("var x = 1; @ var y = 2;")
	assert.NotEmpty(t, errs)
	// lexing continues past the bad character and still reaches EOF.
	assert.Equal(t, "EOF", toks[len(toks)-1].Kind)
}

func TestParse_CleanProgramHasASTAndNoErrors(t *testing.T) {
	result := lng.Parse("var x: int = 10; pf(x);")
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.AST)
}

func TestParse_CombinesParseAndSemanticErrors(t *testing.T) {
	result := lng.Parse("pf(z);")
	assert.Nil(t, result.AST)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "undefined variable")
}

func TestBuildAST_SameContractAsParse(t *testing.T) {
	src := "function add(a: int, b: int): int { return a + b; }"
	assert.Equal(t, lng.Parse(src), lng.BuildAST(src))
}

func TestRun_ArithmeticAndPrint(t *testing.T) {
	result := lng.Run("var x: int = 10; var y: int = 20; pf(x + y);")
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"30"}, result.Output)
}

func TestRun_WhileLoop(t *testing.T) {
	result := lng.Run("var i: int = 0; while (i < 3) { pf(i); i = i + 1; }")
	assert.Equal(t, []string{"0", "1", "2"}, result.Output)
}

func TestRun_FunctionCall(t *testing.T) {
	result := lng.Run("function add(a: int, b: int): int { return a + b; } pf(add(5, 7));")
	assert.Equal(t, []string{"12"}, result.Output)
}

func TestRun_ForLoopWithContinue(t *testing.T) {
	result := lng.Run("for (var i = 0; i < 3; i = i + 1) { if (i == 1) { continue; } pf(i); }")
	assert.Equal(t, []string{"0", "2"}, result.Output)
}

func TestRun_ClassConstructorAndMethod(t *testing.T) {
	src := `class Counter {
		constructor() { this.n = 0; }
		inc() { this.n = this.n + 1; return this.n; }
	}
	var c = Counter();
	pf(c.inc());
	pf(c.inc());`
	result := lng.Run(src)
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"1", "2"}, result.Output)
}

func TestRun_ArrayIndexAssignment(t *testing.T) {
	src := `var a = [10, 20, 30]; a[1] = a[1] + 5; pf(a[0]); pf(a[1]); pf(a[2]);`
	result := lng.Run(src)
	assert.Equal(t, []string{"10", "25", "30"}, result.Output)
}

func TestRun_UndefinedVariableIsStaticError(t *testing.T) {
	result := lng.Run("pf(z);")
	assert.Equal(t, []string{}, result.Output)
	assert.Equal(t, "static analysis error", result.Error)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "undefined variable")
}

func TestRun_ConstWithoutInitializerIsStaticError(t *testing.T) {
	result := lng.Run("const PI;")
	assert.Equal(t, "static analysis error", result.Error)
	assert.NotEmpty(t, result.Errors)
}

func TestRun_BreakOutsideLoopIsStaticError(t *testing.T) {
	result := lng.Run("break;")
	assert.Equal(t, "static analysis error", result.Error)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "'break'")
}

func TestRun_ArityMismatchIsRuntimeError(t *testing.T) {
	result := lng.Run("function f() { return 1; } f(1, 2);")
	require.NotEmpty(t, result.Output)
	last := result.Output[len(result.Output)-1]
	assert.Contains(t, last, "Runtime Error:")
	assert.Equal(t, last, result.Error)
}

func TestRun_ClosureCapturesDefiningEnvironment(t *testing.T) {
	src := `function makeAdder(x: int) {
		function add(y: int) { return x + y; }
		return add;
	}
	var addFive = makeAdder(5);
	pf(addFive(3));`
	result := lng.Run(src)
	assert.Equal(t, []string{"8"}, result.Output)
}

func TestRun_LogicalOperatorsShortCircuit(t *testing.T) {
	src := `function boom() { pf("boom"); return true; }
	var ok = false && boom();
	pf(ok);`
	result := lng.Run(src)
	// boom() must never run, so only the final print appears.
	assert.Equal(t, []string{"false"}, result.Output)
}
