// Package lng is the public facade over the LNG pipeline: Tokenize,
// Parse, BuildAST, and Run, each matching the external interface
// contract a host (CLI, HTTP service, embedding application) exposes.
package lng

import (
	"github.com/Byron-voldigoad/AST/internal/ast"
	"github.com/Byron-voldigoad/AST/internal/interp"
	"github.com/Byron-voldigoad/AST/internal/lexer"
	"github.com/Byron-voldigoad/AST/internal/parser"
	"github.com/Byron-voldigoad/AST/internal/semantic"
)

// TokenInfo is the wire shape of a single token.
type TokenInfo struct {
	Kind   string `json:"kind"`
	Value  any    `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// SourceError is a single message-plus-line error, the shape shared by
// parse, semantic, and combined-analysis error lists.
type SourceError struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
}

// ParseResult is the output shape of Parse and BuildAST: AST is present
// iff Errors is empty.
type ParseResult struct {
	AST    map[string]any `json:"ast,omitempty"`
	Errors []SourceError  `json:"errors,omitempty"`
}

// RunResult is the output shape of Run.
type RunResult struct {
	Output []string      `json:"output"`
	Error  string        `json:"error,omitempty"`
	Errors []SourceError `json:"errors,omitempty"`
}

// Tokenize scans source into its full token list (EOF included) plus any
// lexical errors; lexing never stops early.
func Tokenize(source string) ([]TokenInfo, []SourceError) {
	toks, lexErrs := lexer.Tokenize(source)

	infos := make([]TokenInfo, len(toks))
	for i, t := range toks {
		infos[i] = TokenInfo{Kind: t.Kind.String(), Value: t.Value, Line: t.Line, Column: t.Column}
	}

	errs := make([]SourceError, len(lexErrs))
	for i, e := range lexErrs {
		errs[i] = SourceError{Message: e.Message, Line: e.Line}
	}
	return infos, errs
}

// Parse tokenizes and parses source, then runs the semantic analyzer
// over the result and combines both error lists. The AST is populated
// only when there are no parse or semantic errors, matching the "ast
// present iff no errors" host policy.
func Parse(source string) ParseResult {
	toks, _ := lexer.Tokenize(source)
	prog, parseErrs := parser.Parse(toks)

	var errs []SourceError
	for _, e := range parseErrs {
		errs = append(errs, SourceError{Message: e.Message, Line: e.Line})
	}

	if prog != nil {
		for _, e := range semantic.Analyze(prog) {
			errs = append(errs, SourceError{Message: e.Message, Line: e.Line})
		}
	}

	if len(errs) > 0 {
		return ParseResult{Errors: errs}
	}
	return ParseResult{AST: ast.ToMap(prog)}
}

// BuildAST has the same contract as Parse; the spec calls this out as a
// distinct operation name but it is not a distinct pipeline.
func BuildAST(source string) ParseResult {
	return Parse(source)
}

// Run tokenizes, parses, analyzes, and executes source. If parse or
// semantic errors exist, execution never starts: output is empty and
// Error carries the static-analysis marker. Otherwise the program runs
// and, if its last output line is a runtime-error line, Error mirrors it.
func Run(source string) RunResult {
	toks, _ := lexer.Tokenize(source)
	prog, parseErrs := parser.Parse(toks)

	var errs []SourceError
	for _, e := range parseErrs {
		errs = append(errs, SourceError{Message: e.Message, Line: e.Line})
	}
	if prog != nil {
		for _, e := range semantic.Analyze(prog) {
			errs = append(errs, SourceError{Message: e.Message, Line: e.Line})
		}
	}

	if len(errs) > 0 {
		return RunResult{Output: []string{}, Error: "static analysis error", Errors: errs}
	}

	output := interp.Run(prog)
	result := RunResult{Output: output}
	if len(output) > 0 && hasRuntimeErrorPrefix(output[len(output)-1]) {
		result.Error = output[len(output)-1]
	}
	return result
}

const runtimeErrorPrefix = "Runtime Error:"

func hasRuntimeErrorPrefix(line string) bool {
	return len(line) >= len(runtimeErrorPrefix) && line[:len(runtimeErrorPrefix)] == runtimeErrorPrefix
}
