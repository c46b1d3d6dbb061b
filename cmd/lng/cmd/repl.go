package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Byron-voldigoad/AST/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive LNG session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.New("lng> ").Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
