package facelet

import (
	"testing"

	"github.com/behren-q/qturn/internal/cube"
)

const solvedFacelets = "WWWWWWWWWGGGRRRBBBOOOGGGRRRBBBOOOGGGRRRBBBOOOYYYYYYYYY"

func TestParseSolved(t *testing.T) {
	s, err := Parse(solvedFacelets)
	if err != nil {
		t.Fatalf("Parse(solved): %v", err)
	}
	if !cube.Equal(s, cube.Solved) {
		t.Errorf("Parse(solved) = %+v, want cube.Solved", s)
	}
}

func TestFormatSolved(t *testing.T) {
	got, err := Format(cube.Solved)
	if err != nil {
		t.Fatalf("Format(cube.Solved): %v", err)
	}
	if got != solvedFacelets {
		t.Errorf("Format(cube.Solved) = %q, want %q", got, solvedFacelets)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	algorithms := []string{"R U R' U'", "F R U' R' F'", "R U' B", "R2 U2 R2 U2 R2 U2"}
	for _, alg := range algorithms {
		pos, err := cube.Parse(alg)
		if err != nil {
			t.Fatalf("cube.Parse(%q): %v", alg, err)
		}
		s, err := Format(pos)
		if err != nil {
			t.Fatalf("Format after %q: %v", alg, err)
		}
		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(Format(parse(%q))): %v", alg, err)
		}
		if !cube.Equal(back, pos) {
			t.Errorf("round trip mismatch for %q", alg)
		}
	}
}

func TestParseWrongLength(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Parse(\"\") should fail")
	}
	if _, err := Parse("RRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRR"); err == nil {
		t.Error("Parse of an all-R string should fail (wrong length is right, but also wrong centers/colors)")
	}
}

func TestParseAllSameColorFails(t *testing.T) {
	allRed := make([]byte, stringLength)
	for i := range allRed {
		allRed[i] = 'R'
	}
	if _, err := Parse(string(allRed)); err == nil {
		t.Error("a facelet string that is all one color should fail the center check")
	}
}

func TestParseBadCenterFails(t *testing.T) {
	bad := []byte(solvedFacelets)
	bad[4] = 'R' // center 4 must be W
	if _, err := Parse(string(bad)); err == nil {
		t.Error("a mismatched center color should be rejected")
	}
}
