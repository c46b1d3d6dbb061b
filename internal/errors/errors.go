// Package errors renders the line-tagged errors every pipeline stage
// produces (lexer, parser, semantic, runtime) into a common,
// source-line-annotated form for the CLI.
//
// Unlike a column-tracking compiler, none of LNG's error types beyond
// the lexer carry a column — parser.ParseError, semantic.SemanticError,
// and interp.RuntimeError are all {Message, Line}, matching the
// {message, line} wire shape pkg/lng.SourceError exposes. Format marks
// the offending line itself rather than a column within it.
package errors

import (
	"fmt"
	"strings"
)

// CompilerError is a single pipeline error with enough context to
// render a source-line excerpt around it.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Line    int
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(line int, message, source, file string) *CompilerError {
	return &CompilerError{Line: line, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a one-line source excerpt. If color is
// true, ANSI codes highlight the excerpt and message for terminal output.
func (e *CompilerError) Format(color bool) string {
	return e.FormatWithContext(0, color)
}

// FormatWithContext renders the error with contextLines of source on
// either side of the offending line, the matching line bolded/colored
// to stand out since there is no column to caret at.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d\n", e.File, e.Line))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d\n", e.Line))
	}

	start, lines := e.sourceContext(contextLines)
	for i, line := range lines {
		currentLine := start + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		if currentLine == e.Line {
			if color {
				sb.WriteString("\033[1;31m") // Red bold
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
		} else {
			if color {
				sb.WriteString("\033[2m") // Dim
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
		}
		sb.WriteString("\n")
	}

	if len(lines) > 0 {
		sb.WriteString("\n")
	}
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceContext returns the 1-indexed starting line number and the
// source lines from (Line - contextLines) to (Line + contextLines).
func (e *CompilerError) sourceContext(contextLines int) (int, []string) {
	if e.Source == "" || e.Line < 1 {
		return e.Line, nil
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return e.Line, nil
	}

	start := e.Line - contextLines
	if start < 1 {
		start = 1
	}
	end := e.Line + contextLines
	if end > len(lines) {
		end = len(lines)
	}

	return start, lines[start-1 : end]
}

// FormatErrors formats multiple compiler errors, one source excerpt
// each, numbered when there is more than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	return FormatErrorsWithContext(errs, 0, color)
}

// FormatErrorsWithContext is FormatErrors with contextLines of
// surrounding source shown around each error.
func FormatErrorsWithContext(errs []*CompilerError, contextLines int, color bool) string {
	if len(errs) == 0 {
		return ""
	}

	if len(errs) == 1 {
		return errs[0].FormatWithContext(contextLines, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.FormatWithContext(contextLines, color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
