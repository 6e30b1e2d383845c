package cube

// ceilDiv4 returns ceil(n/4): a lower bound on the number of quarter turns
// needed to fix n misplaced cubies, since a single quarter turn repositions
// at most four edges or four corners.
func ceilDiv4(n int) int {
	return (n + 3) / 4
}

// cheapBound counts how many edges and corners are out of place and
// divides by four, the same style of pre-check the original source's
// popcount-based flip/edge heuristics use before falling back to the
// pattern-database lookup: it is much faster than a table probe and often
// prunes a branch outright.
func cheapBound(p State) int {
	inv := Invert(p)
	misEdges, misCorners := 0, 0
	for i := 0; i < numEdges; i++ {
		if inv.Edges[i]&edgePermMask != byte(i) || inv.Edges[i]&edgeOrientMask != 0 {
			misEdges++
		}
	}
	for i := 0; i < numCorners; i++ {
		if inv.Corners[i]&cornerPermMask != byte(i) || inv.Corners[i]&cornerOrientMask != 0 {
			misCorners++
		}
	}
	bound := ceilDiv4(misEdges)
	if c := ceilDiv4(misCorners); c > bound {
		bound = c
	}
	return bound
}

// patternBound looks up the exact distance to bring cubies edge-0, edge-1,
// corner-0 and corner-1 home simultaneously, then takes the best value
// seen across every whole-cube rotation of p (including no rotation at
// all). Each individual lookup is an exact shortest-path distance in the
// quarter-turn move graph, so it is admissible on its own; the max of
// several admissible bounds is still admissible.
func patternBound(p State) int {
	best := quad01Lookup(p)
	for _, s := range Symmetries {
		if v := quad01Lookup(conjugate(p, s)); v > best {
			best = v
		}
	}
	return best
}

func quad01Lookup(p State) int {
	inv := Invert(p)
	e0 := inv.Edges[0]
	e1 := inv.Edges[1]
	c0 := inv.Corners[0]
	c1 := inv.Corners[1]
	v := quad01Dist[e0][e1][c0][c1]
	if v == unreachable {
		return 0
	}
	return int(v)
}

// Heuristic returns an admissible lower bound on the number of quarter
// turns needed to solve p: the larger of the cheap misplaced-cubie count
// and the symmetry-boosted pattern-database distance.
func Heuristic(p State) int {
	bound := cheapBound(p)
	if pb := patternBound(p); pb > bound {
		bound = pb
	}
	return bound
}

// HeuristicBreakdown exposes the two components Heuristic maximizes over,
// for diagnostics (see cmd bound): the cheap misplaced-cubie bound, the
// symmetry-boosted pattern-database bound, and the combined result.
func HeuristicBreakdown(p State) (cheap, pattern, best int) {
	cheap = cheapBound(p)
	pattern = patternBound(p)
	best = cheap
	if pattern > best {
		best = pattern
	}
	return cheap, pattern, best
}
