package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Byron-voldigoad/AST/internal/errors"
)

func TestFormat_MarksTheFailingLine(t *testing.T) {
	src := "var x: int = 1;\npf(z);\n"
	e := errors.NewCompilerError(2, "undefined variable 'z'", src, "script.lng")

	out := e.Format(false)
	assert.Contains(t, out, "Error in script.lng:2")
	assert.Contains(t, out, "pf(z);")
	assert.Contains(t, out, "undefined variable 'z'")
}

func TestFormatWithContext_IncludesNeighboringLines(t *testing.T) {
	src := "var a = 1;\nvar b = 2;\npf(z);\nvar d = 4;\n"
	e := errors.NewCompilerError(3, "undefined variable 'z'", src, "script.lng")

	out := e.FormatWithContext(1, false)
	assert.Contains(t, out, "var b = 2;")
	assert.Contains(t, out, "pf(z);")
	assert.Contains(t, out, "var d = 4;")
	assert.NotContains(t, out, "var a = 1;")
}

func TestFormatErrorsWithContext_NumbersMultipleErrors(t *testing.T) {
	src := "pf(a);\npf(b);\n"
	errs := []*errors.CompilerError{
		errors.NewCompilerError(1, "undefined variable 'a'", src, ""),
		errors.NewCompilerError(2, "undefined variable 'b'", src, ""),
	}

	out := errors.FormatErrorsWithContext(errs, 0, false)
	assert.True(t, strings.Contains(out, "2 error(s)"))
	assert.Contains(t, out, "[Error 1 of 2]")
	assert.Contains(t, out, "[Error 2 of 2]")
}

func TestFormat_ColorWrapsMessageAndLine(t *testing.T) {
	e := errors.NewCompilerError(1, "boom", "pf(1);\n", "")
	plain := e.Format(false)
	colored := e.Format(true)
	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\033[")
}
