package cube

import (
	"fmt"
	"strings"
)

// Parse reads a whitespace-separated algorithm string - tokens drawn from
// {U,D,L,R,F,B} optionally suffixed with ' (inverse) or 2 (half turn) - and
// returns the State reached by applying it to Solved.
func Parse(algorithm string) (State, error) {
	fields := strings.Fields(algorithm)
	if len(fields) == 0 {
		return State{}, fmt.Errorf("cube: empty algorithm")
	}
	pos := Solved
	for _, tok := range fields {
		m, ok := Moves[tok]
		if !ok {
			return State{}, fmt.Errorf("cube: unrecognized move %q", tok)
		}
		pos = Compose(pos, m)
	}
	return pos, nil
}

// ApplyTo applies an algorithm string to a starting state instead of Solved.
func ApplyTo(start State, algorithm string) (State, error) {
	fields := strings.Fields(algorithm)
	pos := start
	for _, tok := range fields {
		m, ok := Moves[tok]
		if !ok {
			return State{}, fmt.Errorf("cube: unrecognized move %q", tok)
		}
		pos = Compose(pos, m)
	}
	return pos, nil
}

// Format joins a sequence of move names (as returned by Search) back into
// an algorithm string. It never folds two adjacent identical quarter turns
// into a half-turn token - that collapsing is Optimize's job, not
// Format's, so a solver-produced path and its printed form always have the
// same number of tokens.
func Format(path []string) string {
	return strings.Join(path, " ")
}
