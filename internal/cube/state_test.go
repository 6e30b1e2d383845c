package cube

import "testing"

func TestSolvedIsValid(t *testing.T) {
	if err := Validate(Solved); err != nil {
		t.Fatalf("Solved failed validation: %v", err)
	}
	if !IsSolved(Solved) {
		t.Fatal("Solved should report IsSolved")
	}
}

func TestComposeIdentity(t *testing.T) {
	for name, m := range Moves {
		t.Run(name, func(t *testing.T) {
			if got := Compose(Solved, m); !Equal(got, m) {
				t.Errorf("solved.compose(%s) = %+v, want %+v", name, got, m)
			}
			if got := Compose(m, Solved); !Equal(got, m) {
				t.Errorf("%s.compose(solved) = %+v, want %+v", name, got, m)
			}
		})
	}
}

func TestComposeInverse(t *testing.T) {
	for name, m := range Moves {
		t.Run(name, func(t *testing.T) {
			inv := Invert(m)
			if got := Compose(m, inv); !Equal(got, Solved) {
				t.Errorf("%s.compose(inv) = %+v, want solved", name, got)
			}
			if got := Compose(inv, m); !Equal(got, Solved) {
				t.Errorf("inv.compose(%s) = %+v, want solved", name, got)
			}
		})
	}
}

func TestQuarterTurnOrderFour(t *testing.T) {
	for _, name := range QuarterTurns {
		t.Run(name, func(t *testing.T) {
			m := Moves[name]
			pos := Solved
			for i := 0; i < 4; i++ {
				pos = Compose(pos, m)
			}
			if !Equal(pos, Solved) {
				t.Errorf("%s applied 4 times = %+v, want solved", name, pos)
			}
		})
	}
}

func TestInvertInvert(t *testing.T) {
	for name, m := range Moves {
		t.Run(name, func(t *testing.T) {
			if got := Invert(Invert(m)); !Equal(got, m) {
				t.Errorf("%s.invert().invert() = %+v, want %+v", name, got, m)
			}
		})
	}
}

func TestComposeInvertDistributes(t *testing.T) {
	// (p.compose(q)).invert() == q.invert().compose(p.invert())
	p := Moves["R"]
	q := Moves["U"]
	lhs := Invert(Compose(p, q))
	rhs := Compose(Invert(q), Invert(p))
	if !Equal(lhs, rhs) {
		t.Errorf("compose/invert did not distribute: lhs=%+v rhs=%+v", lhs, rhs)
	}
}

func TestValidateRejectsDuplicateEdge(t *testing.T) {
	s := Solved
	s.Edges[0] = s.Edges[1]
	if err := Validate(s); err == nil {
		t.Error("expected an error for a duplicated edge identity")
	}
}

func TestValidateRejectsStrayBits(t *testing.T) {
	s := Solved
	s.Corners[0] |= 0x80
	if err := Validate(s); err == nil {
		t.Error("expected an error for stray bits outside the corner mask")
	}
}
