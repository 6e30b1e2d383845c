package cli

import (
	"fmt"
	"os"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run algebraic self-checks of the move table and canonical tree",
	Long: `Verify exercises the live move table and canonical move tree against
the algebraic invariants the solver depends on for correctness:

  1. solved composed with any move is that move (left/right identity).
  2. a move composed with its inverse is solved (left/right inverse).
  3. every quarter turn, applied four times, returns to solved.
  4. inverting a state twice is a no-op.
  9. no two distinct 2-move canonical paths reach the same state.

It reports pass/fail per check and exits non-zero if any check fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		checks := []struct {
			name string
			run  func() error
		}{
			{"identity", checkIdentity},
			{"inverse", checkInverse},
			{"quarter-turn order 4", checkOrderFour},
			{"double invert", checkDoubleInvert},
			{"canonical tree no duplicates", checkCanonicalNoDuplicates},
		}

		failed := false
		for _, c := range checks {
			if err := c.run(); err != nil {
				fmt.Printf("FAIL: %s: %v\n", c.name, err)
				failed = true
			} else {
				fmt.Printf("PASS: %s\n", c.name)
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func checkIdentity() error {
	for name, m := range cube.Moves {
		if !cube.Equal(cube.Compose(cube.Solved, m), m) {
			return fmt.Errorf("solved.compose(%s) != %s", name, name)
		}
		if !cube.Equal(cube.Compose(m, cube.Solved), m) {
			return fmt.Errorf("%s.compose(solved) != %s", name, name)
		}
	}
	return nil
}

func checkInverse() error {
	for name, m := range cube.Moves {
		inv := cube.Invert(m)
		if !cube.Equal(cube.Compose(m, inv), cube.Solved) {
			return fmt.Errorf("%s.compose(%s^-1) != solved", name, name)
		}
		if !cube.Equal(cube.Compose(inv, m), cube.Solved) {
			return fmt.Errorf("%s^-1.compose(%s) != solved", name, name)
		}
	}
	return nil
}

func checkOrderFour() error {
	for _, name := range cube.QuarterTurns {
		m := cube.Moves[name]
		pos := cube.Solved
		for i := 0; i < 4; i++ {
			pos = cube.Compose(pos, m)
		}
		if !cube.Equal(pos, cube.Solved) {
			return fmt.Errorf("%s applied 4 times != solved", name)
		}
	}
	return nil
}

func checkDoubleInvert() error {
	for name, m := range cube.Moves {
		if !cube.Equal(cube.Invert(cube.Invert(m)), m) {
			return fmt.Errorf("%s.invert().invert() != %s", name, name)
		}
	}
	return nil
}

func checkCanonicalNoDuplicates() error {
	seen := make(map[cube.State]string)
	for _, n1 := range cube.Root {
		for _, n2 := range n1.Children {
			s := cube.Compose(n1.State, n2.State)
			path := n1.Name + " " + n2.Name
			if prev, ok := seen[s]; ok {
				return fmt.Errorf("path %q reaches the same state as %q", path, prev)
			}
			seen[s] = path
		}
	}
	return nil
}
