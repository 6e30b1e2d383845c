package cube

import "testing"

func TestMovesTableComplete(t *testing.T) {
	if len(Moves) != 18 {
		t.Fatalf("len(Moves) = %d, want 18", len(Moves))
	}
	for _, f := range faceNames {
		for _, suffix := range []string{"", "2", "'"} {
			name := f + suffix
			if _, ok := Moves[name]; !ok {
				t.Errorf("Moves missing %q", name)
			}
		}
	}
}

func TestQuarterTurnsAreTwelveGenerators(t *testing.T) {
	if len(QuarterTurns) != 12 {
		t.Fatalf("len(QuarterTurns) = %d, want 12", len(QuarterTurns))
	}
	for _, name := range QuarterTurns {
		if len(name) != 1 && !(len(name) == 2 && name[1] == '\'') {
			t.Errorf("QuarterTurns contains non-quarter-turn token %q", name)
		}
	}
}

func TestHalfTurnIsDoubleQuarter(t *testing.T) {
	for _, f := range faceNames {
		q := Moves[f]
		want := Compose(q, q)
		if got := Moves[f+"2"]; !Equal(got, want) {
			t.Errorf("Moves[%q] != %q composed with itself", f+"2", f)
		}
	}
}

func TestPrimeIsInverse(t *testing.T) {
	for _, f := range faceNames {
		q := Moves[f]
		want := Invert(q)
		if got := Moves[f+"'"]; !Equal(got, want) {
			t.Errorf("Moves[%q] != invert(%q)", f+"'", f)
		}
	}
}

func TestOppositeFaceIsInvolution(t *testing.T) {
	for f, opp := range oppositeFace {
		if oppositeFace[opp] != f {
			t.Errorf("oppositeFace(%q)=%q but oppositeFace(%q)=%q", f, opp, opp, oppositeFace[opp])
		}
	}
}

func TestFaceOfAndIsPrime(t *testing.T) {
	cases := []struct {
		move      string
		face      string
		wantPrime bool
	}{
		{"R", "R", false},
		{"R'", "R", true},
		{"U2", "U", false},
	}
	for _, c := range cases {
		if got := faceOf(c.move); got != c.face {
			t.Errorf("faceOf(%q) = %q, want %q", c.move, got, c.face)
		}
		if got := isPrime(c.move); got != c.wantPrime {
			t.Errorf("isPrime(%q) = %v, want %v", c.move, got, c.wantPrime)
		}
	}
}
