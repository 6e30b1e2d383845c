package cube

// The six quarter-turn generators are themselves States: Compose(Solved, m)
// equals m, the same way the original C++ source this package is translated
// from (nelhage/rubik) represents a move as a Cube value. Edge flip uses the
// same bit (0x10) as a cube's own orientation field; corner twist classes
// (c0, c1, c2) are shifted per this package's bit layout (shift 3, mask
// 0x18) rather than the original's shift-4 layout, so the literal byte
// values differ from the C++ source even though the underlying permutation
// and twist-class data is the same.
const (
	e byte = edgeOrientMask // flipped-edge marker

	c0 byte = 0 << cornerOrientShift
	c1 byte = 1 << cornerOrientShift
	c2 byte = 2 << cornerOrientShift
)

func newState(edges [numEdges]byte, corners [numCorners]byte) State {
	var s State
	copy(s.Edges[:numEdges], edges[:])
	copy(s.Corners[:numCorners], corners[:])
	return s
}

var (
	moveL = newState(
		[numEdges]byte{4, 1, 2, 3, 8, 5, 6, 0, 7, 9, 10, 11},
		[numCorners]byte{c1 | 4, c0 | 1, c0 | 2, c2 | 0, c2 | 7, c0 | 5, c0 | 6, c1 | 3},
	)
	moveR = newState(
		[numEdges]byte{0, 1, e | 6, 3, 4, e | 2, e | 10, 7, 8, 9, e | 5, 11},
		[numCorners]byte{c0 | 0, c2 | 2, c1 | 6, c0 | 3, c0 | 4, c1 | 1, c2 | 5, c0 | 7},
	)
	moveU = newState(
		[numEdges]byte{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		[numCorners]byte{c0 | 3, c0 | 0, c0 | 1, c0 | 2, c0 | 4, c0 | 5, c0 | 6, c0 | 7},
	)
	moveD = newState(
		[numEdges]byte{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
		[numCorners]byte{c0 | 0, c0 | 1, c0 | 2, c0 | 3, c0 | 5, c0 | 6, c0 | 7, c0 | 4},
	)
	moveF = newState(
		[numEdges]byte{0, 1, 2, e | 7, 4, 5, 3, e | 11, 8, 9, 10, 6},
		[numCorners]byte{c0 | 0, c0 | 1, c2 | 3, c1 | 7, c0 | 4, c0 | 5, c1 | 2, c2 | 6},
	)
	moveB = newState(
		[numEdges]byte{0, 5, 2, 3, e | 1, 9, 6, 7, 8, e | 4, 10, 11},
		[numCorners]byte{c2 | 1, c1 | 5, c0 | 2, c0 | 3, c1 | 0, c2 | 4, c0 | 6, c0 | 7},
	)
)

// faceNames lists the six face letters in a fixed, deterministic order used
// wherever the package needs to range over faces (the Moves map and the
// QuarterTurns order that tree construction and table seeding use).
var faceNames = [6]string{"U", "D", "L", "R", "F", "B"}

var faceMove = map[string]State{
	"U": moveU,
	"D": moveD,
	"L": moveL,
	"R": moveR,
	"F": moveF,
	"B": moveB,
}

// Moves maps every one of the 18 named quarter/half/inverse turns to its
// State. Only the 12 quarter turns (the bare face letters and their prime
// forms) are generators used by the search tree; the 6 half turns are
// provided because they are legal single moves in the algorithm notation
// (R2 is one move, not two).
var Moves = func() map[string]State {
	m := make(map[string]State, 18)
	for _, f := range faceNames {
		q := faceMove[f]
		half := Compose(q, q)
		inv := Invert(q)
		m[f] = q
		m[f+"2"] = half
		m[f+"'"] = inv
	}
	return m
}()

// QuarterTurns lists the 12 quarter-turn generator names in a fixed order:
// each face letter followed immediately by its prime form. This is the
// vocabulary the canonical search tree is built over; half turns are
// legal moves in an algorithm but are never themselves tree edges because
// R2 is represented as two R-generator steps for search purposes.
var QuarterTurns = func() []string {
	names := make([]string, 0, 12)
	for _, f := range faceNames {
		names = append(names, f, f+"'")
	}
	return names
}()

// oppositeFace pairs each face with the one it never shares an edge with.
var oppositeFace = map[string]string{
	"U": "D", "D": "U",
	"L": "R", "R": "L",
	"F": "B", "B": "F",
}

// primaryFace marks one face of each opposing pair as the "primary" one,
// used by the canonical move tree to break the U/D, L/R and F/B tie when
// deciding which of two commuting opposite-face moves may follow the other.
var primaryFace = map[string]bool{
	"U": false, "D": true,
	"L": false, "R": true,
	"F": false, "B": true,
}

func faceOf(move string) string {
	return move[:1]
}

func isPrime(move string) bool {
	return len(move) > 1 && move[1] == '\''
}
