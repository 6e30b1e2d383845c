package cube

import (
	"reflect"
	"testing"
)

func TestSearchKnownCases(t *testing.T) {
	cases := []struct {
		name     string
		scramble string
		maxDepth int
		wantOK   bool
		wantPath []string
	}{
		{"single quarter turn", "R", 1, true, []string{"R'"}},
		{"two moves, depth too shallow", "R U", 1, false, nil},
		{"two moves, depth sufficient", "R U", 2, true, []string{"U'", "R'"}},
		{"three moves", "R U' B", 4, true, []string{"B'", "U", "R'"}},
		{"commuting opposite faces", "R L", 2, true, []string{"R'", "L'"}},
		{"half turn via two quarter turns", "R2", 4, true, []string{"R", "R"}},
		{"superflip unsolvable within depth 4", "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2", 4, false, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := Parse(c.scramble)
			if err != nil {
				t.Fatalf("Parse(%q): %v", c.scramble, err)
			}
			path, ok := Search(pos, c.maxDepth)
			if ok != c.wantOK {
				t.Fatalf("Search(%q, %d) ok = %v, want %v (path=%v)", c.scramble, c.maxDepth, ok, c.wantOK, path)
			}
			if c.wantOK && !reflect.DeepEqual(path, c.wantPath) {
				t.Errorf("Search(%q, %d) path = %v, want %v", c.scramble, c.maxDepth, path, c.wantPath)
			}
		})
	}
}

func TestSearchSolutionActuallySolves(t *testing.T) {
	scrambles := []string{"R U R' U'", "F R U' R' F'", "R U' B", "R2 U2 R2"}
	for _, scramble := range scrambles {
		pos, err := Parse(scramble)
		if err != nil {
			t.Fatalf("Parse(%q): %v", scramble, err)
		}
		path, ok := Search(pos, 6)
		if !ok {
			t.Errorf("Search(%q, 6) found no solution; the scramble is at most 6 quarter turns", scramble)
			continue
		}
		result, err := ApplyTo(pos, Format(path))
		if err != nil {
			t.Fatalf("ApplyTo: %v", err)
		}
		if !IsSolved(result) {
			t.Errorf("applying Search's path for %q did not reach solved", scramble)
		}
		if len(path) > 6 {
			t.Errorf("Search(%q, 6) returned a path longer than the max depth: %d", scramble, len(path))
		}
	}
}

func TestSearchFailsBelowHeuristic(t *testing.T) {
	pos, err := Parse("R U' B")
	if err != nil {
		t.Fatal(err)
	}
	h := Heuristic(pos)
	if h == 0 {
		t.Skip("heuristic is 0 for this position, nothing to test")
	}
	if _, ok := Search(pos, h-1); ok {
		t.Errorf("Search succeeded at depth %d, below the admissible bound %d", h-1, h)
	}
}
