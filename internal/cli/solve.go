package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [algorithm]",
	Short: "Find a shortest quarter-turn solution to a scrambled cube",
	Long: `Solve builds a starting state from an algorithm string (or a
--facelets string), then iteratively deepens the search from depth 0 up
to --max-depth, printing the first depth that succeeds.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		facelets, _ := cmd.Flags().GetString("facelets")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		headless, _ := cmd.Flags().GetBool("headless")

		pos, err := startState(scramble, facelets)
		if err != nil {
			if !headless {
				fmt.Println(err)
			}
			os.Exit(1)
		}

		if !headless {
			fmt.Printf("Solving scramble: %q (max depth %d)\n", scramble, maxDepth)
		}

		start := time.Now()
		path, ok := cube.Search(pos, maxDepth)
		elapsed := time.Since(start)

		if !ok {
			if !headless {
				fmt.Printf("No solution found within depth %d\n", maxDepth)
			}
			os.Exit(1)
		}

		solution := cube.Format(path)
		if headless {
			fmt.Print(solution)
			return
		}
		fmt.Printf("Solution: %s\n", solution)
		fmt.Printf("Depth: %d\n", len(path))
		fmt.Printf("Time: %v\n", elapsed)
	},
}

func init() {
	solveCmd.Flags().String("facelets", "", "Starting cube state as a 54-character facelet string")
	solveCmd.Flags().Int("max-depth", 20, "Deepest search depth to try before giving up")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
}
