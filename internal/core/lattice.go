package core

// Grid dimensions. Each grid is addressed as [y][x].
const (
	VertexCols = 6
	VertexRows = 11
	EdgeCols   = 11
	EdgeRows   = 21
	RegionCols = 5
	RegionRows = 9

	NumVertices = 54
	NumEdges    = 72
	NumRegions  = 19
)

// InVertexBounds reports whether c addresses a cell of the vertex array.
func InVertexBounds(c Coord) bool {
	return c.X >= 0 && c.X < VertexCols && c.Y >= 0 && c.Y < VertexRows
}

// InEdgeBounds reports whether c addresses a cell of the edge array.
func InEdgeBounds(c Coord) bool {
	return c.X >= 0 && c.X < EdgeCols && c.Y >= 0 && c.Y < EdgeRows
}

// InRegionBounds reports whether c addresses a cell of the region array.
func InRegionBounds(c Coord) bool {
	return c.X >= 0 && c.X < RegionCols && c.Y >= 0 && c.Y < RegionRows
}

// IsValidVertex reports whether c is one of the 54 campus sites.
// The top and bottom rows hold only the two middle columns; the rows next to
// them drop the outermost columns.
func IsValidVertex(c Coord) bool {
	if !InVertexBounds(c) {
		return false
	}
	switch c.Y {
	case 0, VertexRows - 1:
		return c.X == 2 || c.X == 3
	case 1, VertexRows - 2:
		return c.X != 0 && c.X != VertexCols-1
	}
	return true
}

// IsValidEdge reports whether c is one of the 72 ARC cells.
// Cells with equal coordinate parity are region interiors or vertices.
// Even rows hold horizontal ARCs whose columns alternate with the row.
func IsValidEdge(c Coord) bool {
	if !InEdgeBounds(c) {
		return false
	}
	x, y := c.X, c.Y
	if x%2 == y%2 {
		return false
	}
	if y%2 == 0 && x%2 == 1 {
		if y%4 == 0 {
			if x == 3 || x == 7 {
				return false
			}
		} else if x == 1 || x == 5 || x == 9 {
			return false
		}
	}
	if x <= 1 || x >= 9 {
		if y < 4 || y > 16 {
			return false
		}
	} else if x < 4 || x > 6 {
		if y > 18 || y < 2 {
			return false
		}
	}
	return true
}

// IsValidRegion reports whether c is one of the 19 hexes.
func IsValidRegion(c Coord) bool {
	if !InRegionBounds(c) {
		return false
	}
	switch c.Y {
	case 0:
		return c.X == 2
	case 1, RegionRows - 1:
		if c.X == 0 || c.X == RegionCols-1 {
			return false
		}
	}
	return c.X%2 == c.Y%2
}

// RegionOrder lists the valid regions in construction order: columns left to
// right, each column top to bottom.
func RegionOrder() []Coord {
	order := make([]Coord, 0, NumRegions)
	for x := 0; x < RegionCols; x++ {
		for y := 0; y < RegionRows; y++ {
			if c := C(x, y); IsValidRegion(c) {
				order = append(order, c)
			}
		}
	}
	return order
}

// RegionVertices returns the six vertices bordering region r.
func RegionVertices(r Coord) [6]Coord {
	var out [6]Coord
	i := 0
	for x := r.X; x <= r.X+1; x++ {
		for y := r.Y; y <= r.Y+2; y++ {
			out[i] = C(x, y)
			i++
		}
	}
	return out
}

// EdgeEndpoints returns the two vertices joined by edge e.
// Vertical ARCs sit on odd rows, horizontal ARCs on odd columns.
func EdgeEndpoints(e Coord) (Coord, Coord) {
	if e.Y%2 == 1 {
		return C(e.X/2, (e.Y-1)/2), C(e.X/2, (e.Y+1)/2)
	}
	return C((e.X-1)/2, e.Y/2), C((e.X+1)/2, e.Y/2)
}
