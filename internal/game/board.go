package game

import (
	"fmt"

	"github.com/vovakirdan/knowledge-island/internal/core"
)

// Region is a hex that produces students of one discipline when its dice
// value is rolled.
type Region struct {
	ID         int
	Coord      core.Coord
	Discipline Discipline
	Dice       int
}

// Board holds the three grids. Out-of-range reads return the zero value;
// out-of-range writes panic.
type Board struct {
	sites   [core.VertexRows][core.VertexCols]Site
	arcs    [core.EdgeRows][core.EdgeCols]Player
	regions [core.RegionRows][core.RegionCols]Region
	order   []core.Coord
}

// NewBoard lays out the 19 regions from parallel discipline and dice arrays
// in construction order.
func NewBoard(disciplines []Discipline, dice []int) (*Board, error) {
	if len(disciplines) != core.NumRegions || len(dice) != core.NumRegions {
		return nil, fmt.Errorf("%w: need %d disciplines and %d dice values, got %d and %d",
			ErrBadLayout, core.NumRegions, core.NumRegions, len(disciplines), len(dice))
	}

	b := &Board{order: core.RegionOrder()}
	for i, c := range b.order {
		d, v := disciplines[i], dice[i]
		if !d.Valid() {
			return nil, fmt.Errorf("%w: region %d has discipline %d", ErrBadLayout, i, int(d))
		}
		if v < MinTrigger || v > MaxTrigger {
			return nil, fmt.Errorf("%w: region %d has dice value %d", ErrBadLayout, i, v)
		}
		b.regions[c.Y][c.X] = Region{ID: i, Coord: c, Discipline: d, Dice: v}
	}
	return b, nil
}

// Site returns the occupant of vertex v. Invalid vertices read as vacant.
func (b *Board) Site(v core.Coord) Site {
	if !core.InVertexBounds(v) {
		return Vacant()
	}
	return b.sites[v.Y][v.X]
}

// SetSite replaces the occupant of vertex v.
func (b *Board) SetSite(v core.Coord, s Site) {
	if !core.InVertexBounds(v) {
		panic(fmt.Sprintf("game: vertex %v out of bounds", v))
	}
	b.sites[v.Y][v.X] = s
}

// ARC returns the owner of edge e. Invalid edges read as NoOne.
func (b *Board) ARC(e core.Coord) Player {
	if !core.InEdgeBounds(e) {
		return NoOne
	}
	return b.arcs[e.Y][e.X]
}

// SetARC assigns edge e to p.
func (b *Board) SetARC(e core.Coord, p Player) {
	if !core.InEdgeBounds(e) {
		panic(fmt.Sprintf("game: edge %v out of bounds", e))
	}
	b.arcs[e.Y][e.X] = p
}

// Region returns the region at c.
func (b *Board) Region(c core.Coord) (Region, bool) {
	if !core.IsValidRegion(c) {
		return Region{}, false
	}
	return b.regions[c.Y][c.X], true
}

// RegionByID returns the region with construction index id (0..18).
func (b *Board) RegionByID(id int) (Region, bool) {
	if id < 0 || id >= len(b.order) {
		return Region{}, false
	}
	return b.Region(b.order[id])
}

// Regions returns all regions in construction order.
func (b *Board) Regions() []Region {
	out := make([]Region, 0, len(b.order))
	for _, c := range b.order {
		out = append(out, b.regions[c.Y][c.X])
	}
	return out
}

// SiteAt decodes path and returns the occupant of the vertex it names.
func (b *Board) SiteAt(path string) Site {
	v, ok := core.DecodeVertex(path).Coord()
	if !ok {
		return Vacant()
	}
	return b.Site(v)
}

// ARCAt decodes path and returns the owner of the edge it names.
func (b *Board) ARCAt(path string) Player {
	e, ok := core.DecodeEdge(path).Coord()
	if !ok {
		return NoOne
	}
	return b.ARC(e)
}

// clone returns a deep copy of the board.
func (b *Board) clone() *Board {
	c := *b
	c.order = append([]core.Coord(nil), b.order...)
	return &c
}
