package cli

import (
	"fmt"
	"os"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/spf13/cobra"
)

var boundCmd = &cobra.Command{
	Use:   "bound [algorithm]",
	Short: "Print the admissible heuristic bound for a cube state",
	Long: `Bound builds a state from an algorithm string (or --facelets) and
prints the heuristic h(state) the search uses to prune, broken down by the
cheap edge/corner popcount bound versus the quad01 pattern-database bound.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := ""
		if len(args) > 0 {
			algorithm = args[0]
		}
		facelets, _ := cmd.Flags().GetString("facelets")

		pos, err := startState(algorithm, facelets)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		cheap, pattern, best := cube.HeuristicBreakdown(pos)
		fmt.Printf("cheap bound:   %d\n", cheap)
		fmt.Printf("pattern bound: %d\n", pattern)
		fmt.Printf("h(state):      %d\n", best)
	},
}

func init() {
	boundCmd.Flags().String("facelets", "", "Cube state as a 54-character facelet string")
}
