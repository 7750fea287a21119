package game

import "github.com/vovakirdan/knowledge-island/internal/core"

// OwnsARCBorderingVertex reports whether p owns one of the ARCs touching
// vertex v.
func (b *Board) OwnsARCBorderingVertex(v core.Coord, p Player) bool {
	e := v.Doubled()
	for _, n := range []core.Coord{e.Add(1, 0), e.Add(-1, 0), e.Add(0, 1), e.Add(0, -1)} {
		if core.IsValidEdge(n) && b.ARC(n) == p {
			return true
		}
	}
	return false
}

// OwnsARCAdjacentTo reports whether p owns an ARC sharing an endpoint with
// edge e.
func (b *Board) OwnsARCAdjacentTo(e core.Coord, p Player) bool {
	neighbours := []core.Coord{
		e.Add(1, 1), e.Add(1, -1), e.Add(-1, 1), e.Add(-1, -1),
		e.Add(0, 2), e.Add(0, -2),
	}
	for _, n := range neighbours {
		if core.IsValidEdge(n) && b.ARC(n) == p {
			return true
		}
	}
	return false
}

// OwnsSiteBorderingARC reports whether p holds a campus or GO8 at either end
// of edge e.
func (b *Board) OwnsSiteBorderingARC(e core.Coord, p Player) bool {
	u, v := core.EdgeEndpoints(e)
	return b.Site(u).OwnedBy(p) || b.Site(v).OwnedBy(p)
}

// CampusAdjacent reports whether any neighbour of vertex v is occupied.
// A vertex has two column neighbours and one row neighbour, to the right
// when the ARC on that side exists and to the left otherwise.
func (b *Board) CampusAdjacent(v core.Coord) bool {
	side := v.Add(-1, 0)
	if core.IsValidEdge(v.Doubled().Add(1, 0)) {
		side = v.Add(1, 0)
	}
	for _, n := range []core.Coord{v.Add(0, -1), v.Add(0, 1), side} {
		if core.IsValidVertex(n) && !b.Site(n).IsVacant() {
			return true
		}
	}
	return false
}
