package game

import (
	"fmt"

	"github.com/vovakirdan/knowledge-island/internal/core"
)

// Apply performs a on behalf of the acting player. The action is checked
// with IsLegal first; a rejected action leaves the game untouched.
// StartSpinoff must be resolved by the caller into ObtainPublication or
// ObtainPatent before it is applied.
func (g *Game) Apply(a Action) error {
	if !g.Started() {
		return ErrNotStarted
	}
	if a.Kind == StartSpinoff {
		return ErrUnresolvedSpinoff
	}
	if !g.IsLegal(a) {
		return fmt.Errorf("%w: %s by %s", ErrIllegalAction, a, g.whoseTurn)
	}

	p := g.whoseTurn
	ps := g.player(p)

	switch a.Kind {
	case Pass:

	case BuildCampus:
		v, _ := destinationVertex(a.Destination)
		ps.spend(campusCost)
		g.board.SetSite(v, Campus(p))
		ps.campuses++
		ps.kpi += CampusKPI
		if d, ok := retrainingCentres[v]; ok && ps.rates[d] > MinExchangeRate {
			ps.rates[d]--
		}

	case BuildGO8:
		v, _ := destinationVertex(a.Destination)
		ps.students[MJ] -= GO8MJ
		ps.students[MMONEY] -= GO8MMONEY
		g.board.SetSite(v, GO8(p))
		ps.campuses--
		ps.go8s++
		g.go8Count++
		ps.kpi += GO8KPI

	case ObtainARC:
		e, _ := destinationEdge(a.Destination)
		ps.spend(arcCost)
		g.board.SetARC(e, p)
		ps.arcs++
		ps.kpi += ARCKPI
		g.arcLead = g.claimLead(g.arcLead, p, func(s *playerState) int { return s.arcs })

	case ObtainPublication:
		ps.spend(spinoffCost)
		ps.publications++
		g.pubLead = g.claimLead(g.pubLead, p, func(s *playerState) int { return s.publications })

	case ObtainPatent:
		ps.spend(spinoffCost)
		ps.patents++
		ps.kpi += PatentKPI

	case RetrainStudents:
		ps.students[a.From] -= ps.rates[a.From]
		ps.students[a.To]++
	}

	return nil
}

// claimLead hands the leadership bonus to p when p strictly exceeds both
// other players, taking it from the previous holder if there was one.
func (g *Game) claimLead(current, p Player, count func(*playerState) int) Player {
	if current == p {
		return current
	}
	mine := count(&g.players[p])
	for _, q := range Players {
		if q != p && count(&g.players[q]) >= mine {
			return current
		}
	}
	if current.Valid() {
		g.players[current].kpi -= LeaderKPI
	}
	g.players[p].kpi += LeaderKPI
	return p
}

// ThrowDice resolves production for value and passes the turn to the next
// seat. The first throw starts the game with UniA acting.
//
// On a 7 nothing is produced; instead every player's MTV and MMONEY
// students become THD.
func (g *Game) ThrowDice(value int) {
	if value == 7 {
		for _, p := range Players {
			ps := &g.players[p]
			ps.students[THD] += ps.students[MTV] + ps.students[MMONEY]
			ps.students[MTV] = 0
			ps.students[MMONEY] = 0
		}
	} else {
		g.produce(value)
	}

	g.turn++
	g.whoseTurn = g.whoseTurn.Next()
}

func (g *Game) produce(value int) {
	for _, r := range g.board.Regions() {
		if r.Dice != value {
			continue
		}
		for _, v := range core.RegionVertices(r.Coord) {
			site := g.board.Site(v)
			switch site.Kind {
			case SiteCampus:
				g.players[site.Owner].students[r.Discipline] += CampusYield
			case SiteGO8:
				g.players[site.Owner].students[r.Discipline] += GO8Yield
			}
		}
	}
}
