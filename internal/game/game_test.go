package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/knowledge-island/internal/core"
)

// quietRoll produces nothing on the default board.
const quietRoll = 2

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := NewDefault()
	g.ThrowDice(quietRoll)
	return g
}

func mustApply(t *testing.T, g *Game, a Action) {
	t.Helper()
	if err := g.Apply(a); err != nil {
		t.Fatalf("Apply(%v) failed: %v", a, err)
	}
}

func TestNewStartingState(t *testing.T) {
	g := NewDefault()

	if g.TurnNumber() != -1 {
		t.Errorf("TurnNumber() = %d, expected -1", g.TurnNumber())
	}
	if g.WhoseTurn() != NoOne {
		t.Errorf("WhoseTurn() = %v, expected %v", g.WhoseTurn(), NoOne)
	}
	if g.MostARCs() != NoOne || g.MostPublications() != NoOne {
		t.Errorf("leaders = %v/%v, expected none", g.MostARCs(), g.MostPublications())
	}
	if g.GO8Count() != 0 {
		t.Errorf("GO8Count() = %d, expected 0", g.GO8Count())
	}

	expectedStudents := map[Discipline]int{THD: 0, BPS: 3, BQN: 3, MJ: 1, MTV: 1, MMONEY: 1}
	for _, p := range Players {
		if g.KPI(p) != 20 {
			t.Errorf("KPI(%v) = %d, expected 20", p, g.KPI(p))
		}
		if g.Campuses(p) != 2 {
			t.Errorf("Campuses(%v) = %d, expected 2", p, g.Campuses(p))
		}
		if g.ARCs(p)+g.GO8s(p)+g.Patents(p)+g.Publications(p) != 0 {
			t.Errorf("player %v starts with non-zero ARCs/GO8s/patents/publications", p)
		}
		for d, n := range expectedStudents {
			if got := g.Students(p, d); got != n {
				t.Errorf("Students(%v, %v) = %d, expected %d", p, d, got, n)
			}
			if got := g.ExchangeRate(p, d, BPS); got != 3 {
				t.Errorf("ExchangeRate(%v, %v) = %d, expected 3", p, d, got)
			}
		}
		for _, path := range HomePaths(p) {
			if got := g.Campus(path); got != Campus(p) {
				t.Errorf("Campus(%q) = %v, expected %v", path, got, Campus(p))
			}
		}
	}
}

func TestHomeCampusCoordinates(t *testing.T) {
	g := NewDefault()
	tests := []struct {
		v     core.Coord
		owner Player
	}{
		{core.C(2, 0), UniA},
		{core.C(3, 10), UniA},
		{core.C(0, 3), UniB},
		{core.C(5, 7), UniB},
		{core.C(0, 8), UniC},
		{core.C(5, 2), UniC},
	}

	for _, tc := range tests {
		if got := g.Board().Site(tc.v); got != Campus(tc.owner) {
			t.Errorf("Site(%v) = %v, expected %v", tc.v, got, Campus(tc.owner))
		}
	}
}

func TestNewBadLayout(t *testing.T) {
	short := DefaultDisciplines()[:18]
	badDice := DefaultDice()
	badDice[4] = 13
	zeroDice := DefaultDice()
	zeroDice[7] = 0
	badDiscipline := DefaultDisciplines()
	badDiscipline[0] = Discipline(9)

	tests := []struct {
		name        string
		disciplines []Discipline
		dice        []int
	}{
		{"short disciplines", short, DefaultDice()},
		{"short dice", DefaultDisciplines(), DefaultDice()[:3]},
		{"dice out of range", DefaultDisciplines(), badDice},
		{"dice of zero", DefaultDisciplines(), zeroDice},
		{"unknown discipline", badDiscipline, DefaultDice()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.disciplines, tc.dice)
			if !errors.Is(err, ErrBadLayout) {
				t.Errorf("New() error = %v, expected ErrBadLayout", err)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "game: invalid board layout: ") {
				t.Errorf("New() error = %q, expected the layout prefix with details", err)
			}
		})
	}
}

func TestRegionQueries(t *testing.T) {
	g := NewDefault()

	tests := []struct {
		id         int
		discipline Discipline
		dice       int
		coord      core.Coord
	}{
		{0, BQN, 9, core.C(0, 2)},
		{7, MTV, 11, core.C(2, 0)},
		{13, THD, 7, core.C(3, 3)},
		{18, BPS, 5, core.C(4, 6)},
	}
	for _, tc := range tests {
		d, ok := g.Discipline(tc.id)
		if !ok || d != tc.discipline {
			t.Errorf("Discipline(%d) = %v, %v, expected %v", tc.id, d, ok, tc.discipline)
		}
		v, ok := g.DiceValue(tc.id)
		if !ok || v != tc.dice {
			t.Errorf("DiceValue(%d) = %d, %v, expected %d", tc.id, v, ok, tc.dice)
		}
		c, ok := g.RegionCoord(tc.id)
		if !ok || c != tc.coord {
			t.Errorf("RegionCoord(%d) = %v, %v, expected %v", tc.id, c, ok, tc.coord)
		}
	}

	for _, id := range []int{-1, 19, 100} {
		if _, ok := g.Discipline(id); ok {
			t.Errorf("Discipline(%d) reported ok", id)
		}
		if _, ok := g.DiceValue(id); ok {
			t.Errorf("DiceValue(%d) reported ok", id)
		}
	}
}

func TestInvalidPlayerQueries(t *testing.T) {
	g := NewDefault()
	for _, p := range []Player{NoOne, Player(4), Player(-1)} {
		if g.KPI(p) != 0 || g.Campuses(p) != 0 || g.Students(p, BPS) != 0 || g.ExchangeRate(p, BPS, MJ) != 0 {
			t.Errorf("queries for player %d returned non-zero values", int(p))
		}
	}
	if g.Students(UniA, Discipline(6)) != 0 {
		t.Error("Students() with unknown discipline returned non-zero")
	}
}

func TestThrowDiceAdvancesTurn(t *testing.T) {
	g := NewDefault()
	expected := []Player{UniA, UniB, UniC, UniA, UniB}

	for i, want := range expected {
		g.ThrowDice(quietRoll)
		if g.TurnNumber() != i {
			t.Errorf("after throw %d TurnNumber() = %d, expected %d", i+1, g.TurnNumber(), i)
		}
		if g.WhoseTurn() != want {
			t.Errorf("after throw %d WhoseTurn() = %v, expected %v", i+1, g.WhoseTurn(), want)
		}
	}
}

func TestNewAcceptsTriggerOne(t *testing.T) {
	dice := DefaultDice()
	dice[0] = 1
	g, err := New(DefaultDisciplines(), dice)
	if err != nil {
		t.Fatalf("New() rejected trigger value 1: %v", err)
	}
	if v, ok := g.DiceValue(0); !ok || v != 1 {
		t.Errorf("DiceValue(0) = %d, %v, expected 1", v, ok)
	}

	// Region 0 borders B's home campus, so a roll of 1 now feeds B.
	g.ThrowDice(1)
	if got := g.Students(UniB, BQN); got != 4 {
		t.Errorf("Students(B, BQN) = %d, expected 4", got)
	}
	if got := g.Students(UniA, BQN); got != 3 {
		t.Errorf("Students(A, BQN) = %d, expected 3", got)
	}
}

func TestProduction(t *testing.T) {
	tests := []struct {
		name   string
		roll   int
		gained map[Player]map[Discipline]int
	}{
		{"nine feeds B from the west", 9, map[Player]map[Discipline]int{UniB: {BQN: 1}}},
		{"eight feeds C twice", 8, map[Player]map[Discipline]int{UniC: {MJ: 1, MTV: 1}}},
		{"six feeds A from the south", 6, map[Player]map[Discipline]int{UniA: {MJ: 1}}},
		{"five feeds B from the east", 5, map[Player]map[Discipline]int{UniB: {BPS: 1}}},
		{"eleven feeds A from the north", 11, map[Player]map[Discipline]int{UniA: {MTV: 1}}},
		{"twelve feeds nobody", 12, nil},
		{"two feeds nobody", 2, nil},
		{"one feeds nobody", 1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewDefault()
			before := g.Snapshot()
			g.ThrowDice(tc.roll)
			after := g.Snapshot()

			for _, p := range Players {
				for d := THD; d <= MMONEY; d++ {
					want := before.Seat(p).Students[d] + tc.gained[p][d]
					if got := after.Seat(p).Students[d]; got != want {
						t.Errorf("Students(%v, %v) = %d, expected %d", p, d, got, want)
					}
				}
			}
		})
	}
}

func TestSevenDrainsWithoutProducing(t *testing.T) {
	// Region 7 borders A's home campus; give it the 7.
	dice := DefaultDice()
	dice[7], dice[13] = 7, 11
	g, err := New(DefaultDisciplines(), dice)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	before := g.Snapshot()
	g.ThrowDice(7)

	for _, p := range Players {
		b := before.Seat(p).Students
		if got, want := g.Students(p, THD), b[THD]+b[MTV]+b[MMONEY]; got != want {
			t.Errorf("Students(%v, THD) = %d, expected %d", p, got, want)
		}
		if g.Students(p, MTV) != 0 || g.Students(p, MMONEY) != 0 {
			t.Errorf("player %v kept MTV/MMONEY after a 7", p)
		}
		for _, d := range []Discipline{BPS, BQN, MJ} {
			if g.Students(p, d) != b[d] {
				t.Errorf("Students(%v, %v) = %d, expected %d", p, d, g.Students(p, d), b[d])
			}
		}
	}
	if g.Students(UniA, THD) != 2 {
		t.Errorf("Students(A, THD) = %d, expected 2", g.Students(UniA, THD))
	}
}

func TestGO8ProducesTwo(t *testing.T) {
	g := NewDefault()
	g.ThrowDice(6) // A gains MJ

	mustApply(t, g, RetrainAction(BPS, MMONEY))
	mustApply(t, g, RetrainAction(BQN, MMONEY))
	mustApply(t, g, GO8Action(""))

	if got := g.Campus(""); got != GO8(UniA) {
		t.Fatalf("Campus(\"\") = %v, expected %v", got, GO8(UniA))
	}
	if g.KPI(UniA) != 30 || g.Campuses(UniA) != 1 || g.GO8s(UniA) != 1 || g.GO8Count() != 1 {
		t.Errorf("after GO8: KPI=%d campuses=%d go8s=%d count=%d",
			g.KPI(UniA), g.Campuses(UniA), g.GO8s(UniA), g.GO8Count())
	}

	mtv := g.Students(UniA, MTV)
	g.ThrowDice(11)
	if got := g.Students(UniA, MTV); got != mtv+2 {
		t.Errorf("Students(A, MTV) = %d, expected %d", got, mtv+2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(t)
	s := g.Snapshot()
	mustApply(t, g, ARCAction("R"))

	if s.Seat(UniA).ARCs != 0 {
		t.Error("snapshot changed after Apply")
	}
	if g.Snapshot() == s {
		t.Error("snapshot did not change after Apply")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := startedGame(t)
	c := g.Clone()
	mustApply(t, c, ARCAction("R"))

	if g.ARC("R") != NoOne {
		t.Errorf("original ARC(\"R\") = %v after applying to clone", g.ARC("R"))
	}
	if c.ARC("R") != UniA {
		t.Errorf("clone ARC(\"R\") = %v, expected %v", c.ARC("R"), UniA)
	}
}
