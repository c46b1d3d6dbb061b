package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Byron-voldigoad/AST/internal/errors"
	"github.com/Byron-voldigoad/AST/pkg/lng"
)

var (
	dumpAST bool
	format  string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an LNG file or expression",
	Long: `Execute an LNG program from a file or inline expression.

Examples:
  lng run script.lng
  lng run -e "pf(1 + 2);"
  lng run --dump-ast script.lng
  lng run --format json script.lng`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	if dumpAST {
		ast := lng.BuildAST(input)
		out, _ := json.MarshalIndent(ast.AST, "", "  ")
		fmt.Println(string(out))
	}

	result := lng.Run(input)

	if format == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		for _, line := range result.Output {
			fmt.Println(line)
		}
		if len(result.Errors) > 0 {
			printSourceErrors(result.Errors, input, filename)
		}
	}

	if result.Error != "" {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}

func printSourceErrors(srcErrs []lng.SourceError, source, filename string) {
	var compilerErrors []*errors.CompilerError
	for _, e := range srcErrs {
		compilerErrors = append(compilerErrors, errors.NewCompilerError(e.Line, e.Message, source, filename))
	}
	// One line of context on either side of the failing line.
	fmt.Print(errors.FormatErrorsWithContext(compilerErrors, 1, true))
	fmt.Println()
}
