package cube

import "testing"

func TestHeuristicSolvedIsZero(t *testing.T) {
	if h := Heuristic(Solved); h != 0 {
		t.Errorf("Heuristic(Solved) = %d, want 0", h)
	}
}

func TestHeuristicOneMoveAwayIsAtMostOne(t *testing.T) {
	for _, name := range QuarterTurns {
		h := Heuristic(Moves[name])
		if h > 1 {
			t.Errorf("Heuristic(%s) = %d, want <= 1 (admissible: one move suffices)", name, h)
		}
	}
}

func TestHeuristicIsAdmissibleAlongKnownSolutions(t *testing.T) {
	cases := []struct {
		algorithm string
		depth     int
	}{
		{"R", 1},
		{"R U", 2},
		{"R U' B", 3},
		{"R L", 2},
		{"R2", 2},
	}
	for _, c := range cases {
		pos, err := Parse(c.algorithm)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.algorithm, err)
		}
		if h := Heuristic(pos); h > c.depth {
			t.Errorf("Heuristic(parse(%q)) = %d, want <= %d (a %d-move solution exists)", c.algorithm, h, c.depth, c.depth)
		}
	}
}

func TestHeuristicBreakdownAgreesWithHeuristic(t *testing.T) {
	pos, err := Parse("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	cheap, pattern, best := HeuristicBreakdown(pos)
	want := Heuristic(pos)
	if best != want {
		t.Errorf("HeuristicBreakdown best=%d, want %d", best, want)
	}
	if best != cheap && best != pattern {
		t.Errorf("HeuristicBreakdown best=%d should equal cheap=%d or pattern=%d", best, cheap, pattern)
	}
}
