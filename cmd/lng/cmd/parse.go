package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Byron-voldigoad/AST/pkg/lng"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and analyze an LNG file, printing the result as JSON",
	Long: `Parse an LNG program, run the semantic analyzer, and print the
combined result as JSON: either the AST (no errors) or the list of
parse/semantic errors.

Examples:
  lng parse script.lng
  lng parse -e "var x: int = 10;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	result := lng.Parse(input)
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
