// Command lng is the reference CLI for the LNG interpreter: lexing,
// parsing, AST dumping, and execution, all backed by pkg/lng.
package main

import (
	"fmt"
	"os"

	"github.com/Byron-voldigoad/AST/cmd/lng/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
