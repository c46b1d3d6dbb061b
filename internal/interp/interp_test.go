package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byron-voldigoad/AST/internal/interp"
	"github.com/Byron-voldigoad/AST/internal/lexer"
	"github.com/Byron-voldigoad/AST/internal/parser"
)

func run(t *testing.T, src string) []string {
	t.Helper()
	toks, lexErrs := lexer.Tokenize(src)
	require.Empty(t, lexErrs)
	prog, parseErrs := parser.Parse(toks)
	require.Empty(t, parseErrs)
	return interp.Run(prog)
}

func TestInterpret_CompositeAssignmentOperators(t *testing.T) {
	out := run(t, `var x: int = 10; x += 5; pf(x); x -= 3; pf(x); x *= 2; pf(x); x /= 4; pf(x);`)
	assert.Equal(t, []string{"15", "12", "24", "6"}, out)
}

func TestInterpret_ArrayLiteralAndMutation(t *testing.T) {
	out := run(t, `var a = [1, 2, 3]; a[0] = a[0] + 100; pf(a[0]); pf(a[1]); pf(a[2]);`)
	assert.Equal(t, []string{"101", "2", "3"}, out)
}

func TestInterpret_ObjectLiteralMemberAccess(t *testing.T) {
	out := run(t, `var o = {x: 1, y: 2}; pf(o.x); pf(o.y);`)
	assert.Equal(t, []string{"1", "2"}, out)
}

func TestInterpret_SingleInheritanceConstructorOverrideAndInheritedMethod(t *testing.T) {
	out := run(t, `
	class Animal {
		constructor() { this.sound = "generic"; }
		speak() { return this.sound; }
	}
	class Dog extends Animal {
		constructor() { this.sound = "woof"; }
	}
	var d = Dog();
	pf(d.speak());
	`)
	assert.Equal(t, []string{"woof"}, out)
}

func TestInterpret_BreakDoesNotLeakPastEnclosingLoop(t *testing.T) {
	out := run(t, `
	for (var i = 0; i < 2; i = i + 1) {
		for (var j = 0; j < 5; j = j + 1) {
			if (j == 1) { break; }
			pf(j);
		}
		pf(-1);
	}
	`)
	assert.Equal(t, []string{"0", "-1", "0", "-1"}, out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	out := run(t, `var x: int = 1; var y: int = 0; pf(x / y);`)
	require.NotEmpty(t, out)
	assert.Contains(t, out[len(out)-1], "Runtime Error:")
}

func TestInterpret_IntFloatPromotion(t *testing.T) {
	out := run(t, `var x: int = 5; var y: float = 2.0; pf(x / y);`)
	assert.Equal(t, []string{"2.5"}, out)
}

func TestInterpret_FunctionReturnValueFlowsThroughNestedBlocks(t *testing.T) {
	out := run(t, `
	function classify(n: int): string {
		if (n < 0) {
			return "negative";
		} else {
			if (n == 0) {
				return "zero";
			}
		}
		return "positive";
	}
	pf(classify(-5));
	pf(classify(0));
	pf(classify(5));
	`)
	assert.Equal(t, []string{"negative", "zero", "positive"}, out)
}
