package game

import "github.com/vovakirdan/knowledge-island/internal/core"

// Rules constants.
const (
	StartKPI          = 20
	StartCampuses     = 2
	StartExchangeRate = 3
	MinExchangeRate   = 2
	MaxGO8s           = 8

	CampusKPI = 10
	GO8KPI    = 10
	ARCKPI    = 2
	PatentKPI = 10
	LeaderKPI = 10

	GO8MJ     = 2
	GO8MMONEY = 3

	CampusYield = 1
	GO8Yield    = 2

	// Region trigger values accepted by New.
	MinTrigger = 1
	MaxTrigger = 12
)

// startStudents is the opening hand of every player.
var startStudents = [NumDisciplines]int{THD: 0, BPS: 3, BQN: 3, MJ: 1, MTV: 1, MMONEY: 1}

// homePaths are the two starting campus paths of each seat.
var homePaths = map[Player][2]string{
	UniA: {"", "RLRLRLRLLRR"},
	UniB: {"RRLRL", "LRLRLRRLRL"},
	UniC: {"RRLRLLRLRL", "LRLRL"},
}

// HomePaths returns the paths of p's two starting campuses.
func HomePaths(p Player) [2]string {
	return homePaths[p]
}

// retrainingCentres maps the special vertices to the discipline whose
// exchange rate a campus there improves.
var retrainingCentres = map[core.Coord]Discipline{
	core.C(1, 1): MTV,
	core.C(2, 1): MTV,
	core.C(3, 1): MMONEY,
	core.C(4, 1): MMONEY,
	core.C(1, 8): BPS,
	core.C(1, 9): BPS,
	core.C(4, 8): MJ,
	core.C(4, 9): MJ,
	core.C(5, 5): BQN,
	core.C(5, 6): BQN,
}

// DefaultDisciplines returns the standard region layout.
func DefaultDisciplines() []Discipline {
	return []Discipline{
		BQN, MMONEY, MJ, MMONEY, MJ, BPS, MTV, MTV, BPS, MTV,
		BQN, MJ, BQN, THD, MJ, MMONEY, MTV, BQN, BPS,
	}
}

// DefaultDice returns the standard region dice values.
func DefaultDice() []int {
	return []int{9, 10, 8, 12, 6, 5, 3, 11, 3, 11, 4, 6, 4, 7, 9, 2, 8, 10, 5}
}

type playerState struct {
	kpi          int
	arcs         int
	campuses     int
	go8s         int
	patents      int
	publications int
	students     [NumDisciplines]int
	rates        [NumDisciplines]int
}

// Game is the complete state of one match.
type Game struct {
	board     *Board
	turn      int
	whoseTurn Player
	players   [NumPlayers + 1]playerState // indexed by Player, slot 0 unused
	arcLead   Player
	pubLead   Player
	go8Count  int
}

// New creates a game in the pre-start state (turn -1, no acting player)
// with the given region layout and the six starting campuses placed.
func New(disciplines []Discipline, dice []int) (*Game, error) {
	board, err := NewBoard(disciplines, dice)
	if err != nil {
		return nil, err
	}

	g := &Game{board: board, turn: -1, whoseTurn: NoOne}
	for _, p := range Players {
		ps := &g.players[p]
		ps.kpi = StartKPI
		ps.campuses = StartCampuses
		ps.students = startStudents
		for d := range ps.rates {
			ps.rates[d] = StartExchangeRate
		}
		for _, path := range homePaths[p] {
			v, ok := core.DecodeVertex(path).Coord()
			if !ok {
				panic("game: home path " + path + " is off the lattice")
			}
			board.SetSite(v, Campus(p))
		}
	}
	return g, nil
}

// NewDefault creates a game on the standard layout.
func NewDefault() *Game {
	g, err := New(DefaultDisciplines(), DefaultDice())
	if err != nil {
		panic(err)
	}
	return g
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.clone()
	return &c
}

func (g *Game) player(p Player) *playerState {
	if !p.Valid() {
		return nil
	}
	return &g.players[p]
}

// Queries.

// Board returns the board. Callers must not modify it.
func (g *Game) Board() *Board { return g.board }

// Campus returns the occupant of the vertex named by path.
func (g *Game) Campus(path string) Site { return g.board.SiteAt(path) }

// ARC returns the owner of the edge named by path.
func (g *Game) ARC(path string) Player { return g.board.ARCAt(path) }

// Discipline returns the discipline of region id.
func (g *Game) Discipline(id int) (Discipline, bool) {
	r, ok := g.board.RegionByID(id)
	return r.Discipline, ok
}

// DiceValue returns the dice value of region id.
func (g *Game) DiceValue(id int) (int, bool) {
	r, ok := g.board.RegionByID(id)
	return r.Dice, ok
}

// RegionCoord returns the region-grid coordinate of region id.
func (g *Game) RegionCoord(id int) (core.Coord, bool) {
	r, ok := g.board.RegionByID(id)
	return r.Coord, ok
}

// TurnNumber returns the current turn, -1 before the first dice throw.
func (g *Game) TurnNumber() int { return g.turn }

// WhoseTurn returns the acting player, NoOne before the first dice throw.
func (g *Game) WhoseTurn() Player { return g.whoseTurn }

// MostARCs returns the holder of the ARC leadership bonus, or NoOne.
func (g *Game) MostARCs() Player { return g.arcLead }

// MostPublications returns the holder of the publication leadership bonus,
// or NoOne.
func (g *Game) MostPublications() Player { return g.pubLead }

// GO8Count returns the number of GO8 campuses on the island.
func (g *Game) GO8Count() int { return g.go8Count }

// Started reports whether the first dice have been thrown.
func (g *Game) Started() bool { return g.turn >= 0 }

func (g *Game) stat(p Player, f func(*playerState) int) int {
	ps := g.player(p)
	if ps == nil {
		return 0
	}
	return f(ps)
}

// KPI returns the score of player p.
func (g *Game) KPI(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.kpi })
}

// ARCs returns the number of ARCs p owns.
func (g *Game) ARCs(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.arcs })
}

// Campuses returns the number of standard campuses p owns.
func (g *Game) Campuses(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.campuses })
}

// GO8s returns the number of GO8 campuses p owns.
func (g *Game) GO8s(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.go8s })
}

// Patents returns the number of patents p holds.
func (g *Game) Patents(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.patents })
}

// Publications returns the number of publications p holds.
func (g *Game) Publications(p Player) int {
	return g.stat(p, func(ps *playerState) int { return ps.publications })
}

// Students returns how many students of discipline d player p holds.
func (g *Game) Students(p Player, d Discipline) int {
	if !d.Valid() {
		return 0
	}
	return g.stat(p, func(ps *playerState) int { return ps.students[d] })
}

// ExchangeRate returns how many from-students p must give up for one
// to-student. The rate depends only on the source discipline.
func (g *Game) ExchangeRate(p Player, from, to Discipline) int {
	if !from.Valid() || !to.Valid() {
		return 0
	}
	return g.stat(p, func(ps *playerState) int { return ps.rates[from] })
}
