package core

// PathLimit is the longest path accepted as an action destination.
const PathLimit = 150

// Path steps.
const (
	StepLeft  = 'L'
	StepRight = 'R'
	StepBack  = 'B'
)

// Root is the vertex every path starts from.
var Root = C(2, 0)

// rootPrev is the imaginary vertex the walk arrives at Root from.
var rootPrev = C(1, -1)

// walk follows path from Root and returns the last two vertices visited.
// ok is false when the path is malformed or steps off the island.
func walk(path string) (cur, prev Coord, ok bool) {
	cur, prev = Root, rootPrev
	for i := 0; i < len(path); i++ {
		if !IsValidVertex(cur) {
			return Sentinel, Sentinel, false
		}
		switch path[i] {
		case StepBack:
			if i == 0 {
				return Sentinel, Sentinel, false
			}
			cur, prev = prev, cur
		case StepLeft, StepRight:
			next := turn(cur, prev, path[i] == StepLeft)
			cur, prev = next, cur
		default:
			return Sentinel, Sentinel, false
		}
	}
	if !IsValidVertex(cur) {
		return Sentinel, Sentinel, false
	}
	return cur, prev, true
}

// turn returns the vertex reached from cur when arriving from prev and
// taking the left or right branch. A vertex has three neighbours: two on its
// column and one on its row, whose side depends on the parity of the cell.
func turn(cur, prev Coord, left bool) Coord {
	x, y := cur.X, cur.Y
	sameParity := x%2 == y%2

	switch {
	case y == prev.Y:
		// Arrived along the row.
		if (x < prev.X) == left {
			return C(x, y+1)
		}
		return C(x, y-1)

	case x == prev.X && y < prev.Y:
		// Arrived moving up.
		if left {
			if sameParity {
				return C(x, y-1)
			}
			return C(x-1, y)
		}
		if !sameParity {
			return C(x, y-1)
		}
		return C(x+1, y)

	case x == prev.X:
		// Arrived moving down.
		if left {
			if !sameParity || (x == VertexCols-1 && y%2 == 0) {
				return C(x, y+1)
			}
			return C(x+1, y)
		}
		if sameParity {
			return C(x, y+1)
		}
		return C(x-1, y)
	}

	// First step away from the root.
	if left {
		return C(x+1, y)
	}
	return C(x, y+1)
}

// DecodeVertex resolves a path to the vertex it ends on.
// The empty path names the root vertex.
func DecodeVertex(path string) Location {
	cur, _, ok := walk(path)
	if !ok {
		return OffLattice
	}
	return Valid(cur)
}

// DecodeEdge resolves a path to the ARC crossed by its last step.
// The empty path crosses no ARC and is OffLattice.
func DecodeEdge(path string) Location {
	if path == "" {
		return OffLattice
	}
	cur, prev, ok := walk(path)
	if !ok {
		return OffLattice
	}
	e := Midpoint(cur, prev)
	if !IsValidEdge(e) {
		return OffLattice
	}
	return Valid(e)
}

// Extend appends a step to path.
func Extend(path string, step byte) string {
	return path + string(step)
}
