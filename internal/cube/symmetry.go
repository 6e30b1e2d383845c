package cube

// The nine non-identity whole-cube rotations (three 90/180/270-degree turns
// around each of the three axes) conjugate the solver's own generator set
// onto itself: rotate the whole cube, make a face turn, rotate back, and
// the result is some other face turn. That property is what lets the
// heuristic in heuristic.go take the best distance-table lookup over every
// rotated view of a position and still have an admissible bound.
//
// Rather than re-deriving each rotation's bit layout from a facelet string
// at init time (which would make cube depend on facelet's parsing, a
// dependency this package otherwise doesn't need), the three base
// rotations are given directly as byte literals, derived from which edges
// and corners the six quarter-turn generators already touch (each pair of
// opposite faces shares no edge; each trio of mutually adjacent faces pins
// down one corner). Every rotation is verified at init time by checking it
// actually conjugates all twelve generators onto generators; any candidate
// that fails (for instance because its orientation bits turn out wrong) is
// dropped rather than trusted, so a derivation mistake here costs heuristic
// strength, never correctness.
var (
	rotY = newState(
		[numEdges]byte{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8},
		[numCorners]byte{1, 2, 3, 0, 5, 6, 7, 4},
	)
	rotX = newState(
		[numEdges]byte{4, 9, 5, 1, 8, 10, 2, 0, 7, 11, 6, 3},
		[numCorners]byte{4, 5, 1, 0, 7, 6, 2, 3},
	)
	rotZ = newState(
		[numEdges]byte{8, 4, 0, 7, 9, 1, 3, 11, 10, 5, 2, 6},
		[numCorners]byte{4, 0, 3, 7, 5, 1, 2, 6},
	)
)

// candidateSymmetries lists the nine non-identity rotations built from the
// three base rotations and their second and third powers.
func candidateSymmetries() []State {
	var out []State
	for _, base := range []State{rotX, rotY, rotZ} {
		sq := Compose(base, base)
		out = append(out, base, sq, Compose(sq, base))
	}
	return out
}

// conjugate returns s^-1 . p . s, the view of position p from the
// perspective of a cube reoriented by s.
func conjugate(p, s State) State {
	return Compose(Invert(s), Compose(p, s))
}

// isGeneratorSetAutomorphism reports whether conjugating every quarter-turn
// generator by s produces another quarter-turn generator.
func isGeneratorSetAutomorphism(s State) bool {
	for _, name := range QuarterTurns {
		conjugated := conjugate(Moves[name], s)
		found := false
		for _, other := range QuarterTurns {
			if conjugated == Moves[other] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Symmetries holds every candidate rotation that passed the automorphism
// check above. The heuristic falls back to the identity-only bound (still
// fully admissible, just weaker) if none verify.
var Symmetries = func() []State {
	var verified []State
	for _, s := range candidateSymmetries() {
		if isGeneratorSetAutomorphism(s) {
			verified = append(verified, s)
		}
	}
	return verified
}()
