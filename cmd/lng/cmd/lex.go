package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Byron-voldigoad/AST/pkg/lng"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an LNG file or expression",
	Long: `Tokenize an LNG program and print the resulting tokens.

Examples:
  lng lex script.lng
  lng lex -e "var x: int = 42;"
  lng lex --show-type --show-pos script.lng
  lng lex --only-errors script.lng`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only lexical errors")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	toks, errs := lng.Tokenize(input)

	if !onlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	for _, e := range errs {
		fmt.Printf("error at line %d: %s\n", e.Line, e.Message)
	}

	if len(errs) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

func printToken(tok lng.TokenInfo) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Kind)
	}

	if tok.Value == nil {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %v", tok.Value)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}

	fmt.Println(output)
}
