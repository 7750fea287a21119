// Package core provides the lattice geometry of the island: the three
// coordinate grids (vertices, edges, regions), their validity masks and the
// L/R/B path decoder. It is pure and has no external dependencies.
package core

import "fmt"

// Coord is a cell in one of the three grids.
// X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Doubled maps a vertex coordinate onto the edge grid.
func (c Coord) Doubled() Coord {
	return Coord{X: c.X * 2, Y: c.Y * 2}
}

// Midpoint returns the edge cell between two adjacent vertices.
func Midpoint(a, b Coord) Coord {
	return Coord{X: (a.X*2 + b.X*2) / 2, Y: (a.Y*2 + b.Y*2) / 2}
}

// Sentinel is the legacy "no such cell" coordinate.
var Sentinel = Coord{X: -1, Y: -1}

// Location is the result of resolving a path: either a valid cell or
// OffLattice.
type Location struct {
	coord Coord
	ok    bool
}

// OffLattice is the Location of a path that leaves the island or is malformed.
var OffLattice = Location{coord: Sentinel}

// Valid wraps a lattice cell.
func Valid(c Coord) Location {
	return Location{coord: c, ok: true}
}

// Coord returns the cell and whether the location is on the lattice.
func (l Location) Coord() (Coord, bool) {
	if !l.ok {
		return Sentinel, false
	}
	return l.coord, true
}

// IsValid reports whether the location is on the lattice.
func (l Location) IsValid() bool {
	return l.ok
}

// Raw returns the cell, or Sentinel for OffLattice.
func (l Location) Raw() Coord {
	if !l.ok {
		return Sentinel
	}
	return l.coord
}

func (l Location) String() string {
	if !l.ok {
		return "off-lattice"
	}
	return l.coord.String()
}
