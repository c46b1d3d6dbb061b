package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepl_AccumulatesStateAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("lng> ")

	r.eval(&buf, "var x: int = 1;")
	r.eval(&buf, "pf(x);")
	r.eval(&buf, "x = x + 1;")
	r.eval(&buf, "pf(x);")

	assert.Equal(t, "1\n2\n", buf.String())
}

func TestRepl_RejectedLineDoesNotPersistInBuffer(t *testing.T) {
	var buf bytes.Buffer
	r := New("lng> ")

	r.eval(&buf, "pf(undefinedThing);")
	assert.Contains(t, buf.String(), "undefined variable")

	buf.Reset()
	r.eval(&buf, "var undefinedThing: int = 5;")
	r.eval(&buf, "pf(undefinedThing);")
	assert.Equal(t, "5\n", buf.String())
}
