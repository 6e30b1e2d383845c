package cli

import (
	"fmt"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/behren-q/qturn/internal/facelet"
)

// startState builds a cube.State from either an algorithm string or a
// 54-character facelet string, matching the "algorithm-or-facelets"
// convention shared by solve, show, and bound. facelets wins when both
// are provided; an empty algorithm yields the solved state.
func startState(algorithm, facelets string) (cube.State, error) {
	if facelets != "" {
		s, err := facelet.Parse(facelets)
		if err != nil {
			return cube.State{}, fmt.Errorf("error parsing facelets: %w", err)
		}
		return s, nil
	}
	if algorithm == "" {
		return cube.Solved, nil
	}
	s, err := cube.Parse(algorithm)
	if err != nil {
		return cube.State{}, fmt.Errorf("error parsing algorithm: %w", err)
	}
	return s, nil
}
