package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Byron-voldigoad/AST/pkg/lng"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Build and print the AST for an LNG file",
	Long: `BuildAST has the same contract as parse, exposed under its own
command name since hosts may call it as a distinct operation.

Examples:
  lng ast script.lng
  lng ast -e "function f() {}"`,
	Args: cobra.MaximumNArgs(1),
	RunE: astScript,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "build the AST for inline code instead of reading from file")
}

func astScript(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	result := lng.BuildAST(input)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if len(result.Errors) > 0 {
		return fmt.Errorf("parsing failed with %d error(s)", len(result.Errors))
	}
	return nil
}
