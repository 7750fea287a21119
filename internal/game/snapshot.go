package game

// PlayerSnapshot holds the counters of one seat.
type PlayerSnapshot struct {
	Player       Player
	KPI          int
	ARCs         int
	Campuses     int
	GO8s         int
	Patents      int
	Publications int
	Students     [NumDisciplines]int
	Rates        [NumDisciplines]int
}

// Snapshot is a value copy of the game counters, used for determinism checks
// and turn logs.
type Snapshot struct {
	Turn             int
	WhoseTurn        Player
	MostARCs         Player
	MostPublications Player
	GO8Count         int
	Players          [NumPlayers]PlayerSnapshot
}

// Snapshot captures the current counters.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Turn:             g.turn,
		WhoseTurn:        g.whoseTurn,
		MostARCs:         g.arcLead,
		MostPublications: g.pubLead,
		GO8Count:         g.go8Count,
	}
	for i, p := range Players {
		ps := g.players[p]
		s.Players[i] = PlayerSnapshot{
			Player:       p,
			KPI:          ps.kpi,
			ARCs:         ps.arcs,
			Campuses:     ps.campuses,
			GO8s:         ps.go8s,
			Patents:      ps.patents,
			Publications: ps.publications,
			Students:     ps.students,
			Rates:        ps.rates,
		}
	}
	return s
}

// Seat returns the snapshot of player p.
func (s Snapshot) Seat(p Player) PlayerSnapshot {
	if !p.Valid() {
		return PlayerSnapshot{}
	}
	return s.Players[p-1]
}
