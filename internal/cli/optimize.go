package cli

import (
	"fmt"
	"strings"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [algorithm]",
	Short: "Fold redundant same-face turns out of an algorithm",
	Long: `Optimize collapses runs of consecutive same-face quarter turns into a
single token and cancels runs that land back on a multiple of four turns.

Examples:
  qturn optimize "R R"           # Outputs: R2
  qturn optimize "R R'"          # Outputs: (empty - moves cancel)
  qturn optimize "R U R' U'"     # Outputs: R U R' U' (no optimization possible)
  qturn optimize "R R R"         # Outputs: R'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm := args[0]
		originalCount := len(strings.Fields(algorithm))

		optimized, err := cube.Optimize(algorithm)
		if err != nil {
			return fmt.Errorf("error optimizing algorithm: %v", err)
		}
		optimizedCount := len(strings.Fields(optimized))

		fmt.Printf("Original:  %s (%d moves)\n", algorithm, originalCount)
		if optimized == "" {
			fmt.Printf("Optimized: (empty - all moves cancel out)\n")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimized, optimizedCount)
		}
		if originalCount != optimizedCount {
			fmt.Printf("Saved %d move(s)\n", originalCount-optimizedCount)
		}
		return nil
	},
}
