// Package cube implements a compact byte-array representation of a 3x3x3
// Rubik's cube and the quarter-turn-metric search that solves it.
//
// A State holds the permutation and orientation of the 12 edge cubies and
// 8 corner cubies. Each array is padded out to 16 bytes so a state is two
// fixed-size lanes (32 bytes total) that line up the way a SIMD compare or
// shuffle would want them, even though this implementation does the algebra
// with plain byte arithmetic rather than platform SIMD intrinsics.
package cube

import "fmt"

const (
	numEdges   = 12
	numCorners = 8

	edgePermMask   byte = 0x0f
	edgeOrientMask byte = 0x10

	cornerPermMask    byte = 0x07
	cornerOrientMask  byte = 0x18
	cornerOrientShift      = 3
)

// State is a permutation+orientation snapshot of every cubie. The zero
// value is not a valid cube; use Solved as the identity element.
type State struct {
	Edges   [16]byte
	Corners [16]byte
}

// Solved is the identity state: every cubie at home, no flips or twists.
var Solved = func() State {
	var s State
	for i := 0; i < numEdges; i++ {
		s.Edges[i] = byte(i)
	}
	for i := 0; i < numCorners; i++ {
		s.Corners[i] = byte(i)
	}
	return s
}()

// Debug gates the Validate calls inside Compose and Invert. Leave
// it on for tests and interactive tools; callers doing bulk table
// construction may turn it off once the move data itself is trusted.
var Debug = true

// Compose returns the state reached by applying b to a: "do a, then do b".
// Edge bytes permute and XOR-flip; corner bytes permute and twist with
// mod-3 wraparound.
func Compose(a, b State) State {
	var out State
	for i := 0; i < numEdges; i++ {
		perm := b.Edges[i] & edgePermMask
		flip := b.Edges[i] & edgeOrientMask
		out.Edges[i] = a.Edges[perm] ^ flip
	}
	for i := 0; i < numCorners; i++ {
		perm := b.Corners[i] & cornerPermMask
		twist := (b.Corners[i] & cornerOrientMask) >> cornerOrientShift
		src := a.Corners[perm]
		id := src & cornerPermMask
		orient := (src & cornerOrientMask) >> cornerOrientShift
		newOrient := (orient + twist) % 3
		out.Corners[i] = id | (newOrient << cornerOrientShift)
	}
	if Debug {
		if err := Validate(out); err != nil {
			panic(fmt.Sprintf("cube: Compose produced an invalid state: %v", err))
		}
	}
	return out
}

// Invert returns the state that undoes a: Compose(a, Invert(a)) == Solved.
func Invert(a State) State {
	var out State
	for i := 0; i < numEdges; i++ {
		id := a.Edges[i] & edgePermMask
		flip := a.Edges[i] & edgeOrientMask
		out.Edges[id] = byte(i) | flip
	}
	for i := 0; i < numCorners; i++ {
		id := a.Corners[i] & cornerPermMask
		orient := (a.Corners[i] & cornerOrientMask) >> cornerOrientShift
		newOrient := (3 - orient) % 3
		out.Corners[id] = byte(i) | (newOrient << cornerOrientShift)
	}
	if Debug {
		if err := Validate(out); err != nil {
			panic(fmt.Sprintf("cube: Invert produced an invalid state: %v", err))
		}
	}
	return out
}

// Equal reports whether a and b are the same cube arrangement.
func Equal(a, b State) bool {
	return a == b
}

// IsSolved reports whether s is the identity arrangement.
func IsSolved(s State) bool {
	return s == Solved
}

// Validate checks that s encodes a legal permutation: every edge identity
// 0-11 and every corner identity 0-7 appears exactly once, padding bytes
// are zero, and no stray bits are set outside the defined masks.
func Validate(s State) error {
	var seenEdge [numEdges]bool
	for i := 0; i < numEdges; i++ {
		b := s.Edges[i]
		if b&^(edgePermMask|edgeOrientMask) != 0 {
			return fmt.Errorf("edge slot %d has stray bits: %#02x", i, b)
		}
		id := b & edgePermMask
		if int(id) >= numEdges {
			return fmt.Errorf("edge slot %d has out-of-range identity %d", i, id)
		}
		if seenEdge[id] {
			return fmt.Errorf("edge identity %d appears more than once", id)
		}
		seenEdge[id] = true
	}
	for i := numEdges; i < len(s.Edges); i++ {
		if s.Edges[i] != 0 {
			return fmt.Errorf("edge padding byte %d is non-zero: %#02x", i, s.Edges[i])
		}
	}

	var seenCorner [numCorners]bool
	for i := 0; i < numCorners; i++ {
		b := s.Corners[i]
		if b&^(cornerPermMask|cornerOrientMask) != 0 {
			return fmt.Errorf("corner slot %d has stray bits: %#02x", i, b)
		}
		id := b & cornerPermMask
		if int(id) >= numCorners {
			return fmt.Errorf("corner slot %d has out-of-range identity %d", i, id)
		}
		if seenCorner[id] {
			return fmt.Errorf("corner identity %d appears more than once", id)
		}
		seenCorner[id] = true
	}
	for i := numCorners; i < len(s.Corners); i++ {
		if s.Corners[i] != 0 {
			return fmt.Errorf("corner padding byte %d is non-zero: %#02x", i, s.Corners[i])
		}
	}
	return nil
}
