package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/behren-q/qturn/internal/facelet"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [algorithm]",
	Short: "Print an unfolded facelet diagram of a cube state",
	Long: `Show applies an algorithm to the solved state (or parses a facelet
string given via --facelets) and prints the resulting cube unfolded as a
cross of six 3x3 faces.

Examples:
  qturn show "R U R' U'"
  qturn show "R U R' U'" --color
  qturn show --facelets "WWWWWWWWWGGGRRRBBBOOOGGGRRRBBBOOOGGGRRRBBBOOOYYYYYYYYY"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := ""
		if len(args) > 0 {
			algorithm = args[0]
		}
		facelets, _ := cmd.Flags().GetString("facelets")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")

		s, err := startState(algorithm, facelets)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		f, err := facelet.Format(s)
		if err != nil {
			fmt.Printf("Error formatting state: %v\n", err)
			os.Exit(1)
		}

		if algorithm != "" {
			fmt.Printf("Cube state after: %s\n\n", algorithm)
		} else if facelets == "" {
			fmt.Println("Solved cube state:")
		}
		fmt.Println(unfold(f, useColor && !useLetters, useColor && useLetters))
	},
}

var ansiColor = map[byte]string{
	'W': "\033[47m  \033[0m",
	'Y': "\033[43m  \033[0m",
	'G': "\033[42m  \033[0m",
	'B': "\033[44m  \033[0m",
	'R': "\033[41m  \033[0m",
	'O': "\033[48;5;208m  \033[0m",
}

func sticker(color byte, useColor, useLetters bool) string {
	if useColor && !useLetters {
		if s, ok := ansiColor[color]; ok {
			return s
		}
	}
	return string(color) + " "
}

func writeRow(sb *strings.Builder, pad string, row []byte, useColor, useLetters bool) {
	sb.WriteString(pad)
	for _, color := range row {
		sb.WriteString(sticker(color, useColor, useLetters))
	}
	sb.WriteString("\n")
}

// unfold renders a facelet string as a cross: the 9-char U block on top, a
// 36-char middle band (3 rows of the four side colors, 3 columns apiece)
// across the middle, and the 9-char D block on the bottom - the layout
// facelet.go's centers/edgeIndexes/cornerIndexes tables already assume.
func unfold(s string, useColor, useLetters bool) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 6)

	for r := 0; r < 3; r++ {
		writeRow(&sb, pad, []byte(s[r*3:r*3+3]), useColor, useLetters)
	}
	sb.WriteString("\n")

	const bandStart = 9
	for r := 0; r < 3; r++ {
		off := bandStart + r*12
		writeRow(&sb, "", []byte(s[off:off+12]), useColor, useLetters)
	}
	sb.WriteString("\n")

	const bottomStart = 45
	for r := 0; r < 3; r++ {
		off := bottomStart + r*3
		writeRow(&sb, pad, []byte(s[off:off+3]), useColor, useLetters)
	}
	return sb.String()
}

func init() {
	showCmd.Flags().String("facelets", "", "Starting cube state as a 54-character facelet string")
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
	showCmd.Flags().Bool("letters", false, "Use letters instead of color blocks when using --color")
}
