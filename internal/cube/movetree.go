package cube

// MoveNode is one edge of the canonical quarter-turn search tree: a move
// name, the State that move applies, and the list of moves legally allowed
// to follow it. Because legality only depends on the previous move's name
// (never on the path taken to get there), every node for a given move name
// is built once and shared across every branch that reaches it - the same
// sharing the original C++ search tree gets from storing next as a pointer
// to a common vector.
type MoveNode struct {
	Name     string
	State    State
	Children []*MoveNode
}

var nodeByName = func() map[string]*MoveNode {
	m := make(map[string]*MoveNode, len(QuarterTurns))
	for _, name := range QuarterTurns {
		m[name] = &MoveNode{Name: name, State: Moves[name]}
	}
	return m
}()

// Root is the list of legal first moves: all 12 quarter turns.
var Root []*MoveNode

func init() {
	for _, name := range QuarterTurns {
		Root = append(Root, nodeByName[name])
	}
	for _, name := range QuarterTurns {
		node := nodeByName[name]
		for _, next := range QuarterTurns {
			if allowedAfter(name, next) {
				node.Children = append(node.Children, nodeByName[next])
			}
		}
	}
}

// allowedAfter decides whether `next` may legally follow `prev` in a
// canonical, duplicate-free quarter-turn search tree:
//
//   - the exact inverse of prev is excluded (it would cancel prev, wasting
//     a ply returning to prev's parent position);
//   - if prev is itself the inverse of some move k, next must also exclude
//     k's inverse (= prev itself), since two such turns reach the same
//     state as k k regardless of which of k/k' started the pair;
//   - the same move repeated is kept (R R is a legal path to a half turn);
//   - when prev and next turn opposite faces (so they commute and produce
//     the same resulting state in either order), only the primary-then-
//     secondary ordering is kept, so "D U" survives but "U D" does not.
func allowedAfter(prev, next string) bool {
	if next == inverseMoveName(prev) {
		return false
	}
	if isPrime(prev) && next == prev {
		return false
	}
	pf, nf := faceOf(prev), faceOf(next)
	if oppositeFace[pf] == nf {
		return primaryFace[pf]
	}
	return true
}

func inverseMoveName(name string) string {
	if isPrime(name) {
		return name[:1]
	}
	return name + "'"
}
