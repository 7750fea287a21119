package game

import "github.com/vovakirdan/knowledge-island/internal/core"

// campusCost is spent once per discipline to found a campus.
var campusCost = []Discipline{BPS, BQN, MJ, MTV}

// arcCost is spent once per discipline to obtain an ARC.
var arcCost = []Discipline{BPS, BQN}

// spinoffCost is spent once per discipline for a spinoff outcome.
var spinoffCost = []Discipline{MJ, MTV, MMONEY}

func (ps *playerState) holds(cost []Discipline) bool {
	for _, d := range cost {
		if ps.students[d] < 1 {
			return false
		}
	}
	return true
}

func (ps *playerState) spend(cost []Discipline) {
	for _, d := range cost {
		ps.students[d]--
	}
}

// IsLegal reports whether the acting player may perform a right now.
// It never mutates the game. Nothing is legal before the first dice throw.
func (g *Game) IsLegal(a Action) bool {
	if !g.Started() {
		return false
	}
	p := g.whoseTurn
	ps := g.player(p)
	if ps == nil {
		return false
	}

	switch a.Kind {
	case Pass:
		return true

	case BuildCampus:
		v, ok := destinationVertex(a.Destination)
		if !ok {
			return false
		}
		return g.board.Site(v).IsVacant() &&
			!g.board.CampusAdjacent(v) &&
			g.board.OwnsARCBorderingVertex(v, p) &&
			ps.holds(campusCost)

	case BuildGO8:
		v, ok := destinationVertex(a.Destination)
		if !ok {
			return false
		}
		return g.board.Site(v) == Campus(p) &&
			g.go8Count < MaxGO8s &&
			ps.students[MJ] >= GO8MJ &&
			ps.students[MMONEY] >= GO8MMONEY

	case ObtainARC:
		e, ok := destinationEdge(a.Destination)
		if !ok {
			return false
		}
		return g.board.ARC(e) == NoOne &&
			(g.board.OwnsSiteBorderingARC(e, p) || g.board.OwnsARCAdjacentTo(e, p)) &&
			ps.holds(arcCost)

	case StartSpinoff, ObtainPublication, ObtainPatent:
		return ps.holds(spinoffCost)

	case RetrainStudents:
		if !a.From.Valid() || !a.To.Valid() || a.From == THD {
			return false
		}
		return ps.students[a.From] >= ps.rates[a.From]
	}

	return false
}

func destinationVertex(path string) (core.Coord, bool) {
	if len(path) > core.PathLimit {
		return core.Sentinel, false
	}
	return core.DecodeVertex(path).Coord()
}

func destinationEdge(path string) (core.Coord, bool) {
	if len(path) > core.PathLimit {
		return core.Sentinel, false
	}
	return core.DecodeEdge(path).Coord()
}
