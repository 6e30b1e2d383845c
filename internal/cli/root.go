package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qturn",
	Short: "A quarter-turn-metric Rubik's cube solver",
	Long: `qturn searches for shortest solutions to a 3x3x3 Rubik's cube under the
quarter-turn metric, using an admissible pattern-database heuristic and a
canonicalized move tree to keep the search duplicate-free.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(boundCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
