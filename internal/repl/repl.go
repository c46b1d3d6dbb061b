// Package repl implements an interactive read-eval-print loop over the
// LNG pipeline, reusing whichever output pkg/lng.Run produces for the
// accumulated session buffer.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/Byron-voldigoad/AST/pkg/lng"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	outputColor = color.New(color.FgYellow)
)

// Repl is a session over a growing source buffer. Each accepted line is
// appended to the buffer and the whole program is re-run; only the
// output lines produced since the previous run are printed, since LNG
// has no notion of evaluating a single statement against a live
// environment independent of the rest of the program.
type Repl struct {
	Prompt string
	buffer strings.Builder
	seen   int
}

// New creates a Repl with the given prompt string.
func New(prompt string) *Repl {
	return &Repl{Prompt: prompt}
}

// Start runs the loop until EOF (Ctrl+D) or a ".exit" line.
func (r *Repl) Start(writer io.Writer) error {
	promptColor.Fprintln(writer, "LNG interactive session. Type '.exit' or Ctrl+D to quit.")

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			outputColor.Fprintln(writer, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			outputColor.Fprintln(writer, "Good bye!")
			return nil
		}

		rl.SaveHistory(line)
		r.eval(writer, line)
	}
}

func (r *Repl) eval(writer io.Writer, line string) {
	r.buffer.WriteString(line)
	r.buffer.WriteString("\n")

	result := lng.Run(r.buffer.String())

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			errorColor.Fprintf(writer, "error at line %d: %s\n", e.Line, e.Message)
		}
		// A rejected line never committed output of its own; drop it from
		// the buffer so the next line is judged independently.
		r.rollback(line)
		return
	}

	for _, out := range result.Output[r.seen:] {
		outputColor.Fprintln(writer, out)
	}
	r.seen = len(result.Output)
}

func (r *Repl) rollback(line string) {
	current := r.buffer.String()
	r.buffer.Reset()
	r.buffer.WriteString(strings.TrimSuffix(current, line+"\n"))
}
