package cli

import (
	"fmt"
	"os"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/behren-q/qturn/internal/facelet"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [algorithm]",
	Short: "Apply an algorithm to the solved state and print its facelets",
	Long: `Twist applies an algorithm to the solved state and prints the
resulting 54-character facelet string. It does not solve - it just shows
where the algorithm takes the cube, for exploring algorithms and patterns.

Examples:
  qturn twist "R U R' U'"
  qturn twist "F R U' R' F'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		s, err := cube.Parse(algorithm)
		if err != nil {
			fmt.Printf("Error parsing algorithm: %v\n", err)
			os.Exit(1)
		}

		f, err := facelet.Format(s)
		if err != nil {
			fmt.Printf("Error formatting state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(f)
		if cube.IsSolved(s) {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}
