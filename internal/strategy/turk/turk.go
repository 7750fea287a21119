// Package turk implements the "Mechanical Turk" seat: it grows outward from
// one of its home campuses along its own ARCs, building campuses where it
// can and ARCs where it cannot, and retrains students to keep a balanced
// hand.
package turk

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/registry"
)

// keep is the number of students of each discipline retraining must leave.
var keep = [game.NumDisciplines]int{game.THD: 0, game.BPS: 1, game.BQN: 1, game.MJ: 1, game.MTV: 1, game.MMONEY: 1}

// Strategy is the Mechanical Turk.
type Strategy struct {
	rng *rand.Rand
}

// New creates the strategy with a time-based seed. Call Reset for
// reproducible play.
func New() *Strategy {
	return &Strategy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Strategy) ID() string    { return "turk" }
func (s *Strategy) Title() string { return "Mechanical Turk" }

// Reset reseeds the home campus choice.
func (s *Strategy) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Decide picks, in order: a campus, an ARC, a spinoff, a retrain, a pass.
func (s *Strategy) Decide(g *game.Game) game.Action {
	p := g.WhoseTurn()
	if !p.Valid() {
		return game.PassAction()
	}

	homes := game.HomePaths(p)
	home := homes[s.rng.Intn(len(homes))]

	holds := func(ds ...game.Discipline) bool {
		for _, d := range ds {
			if g.Students(p, d) < 1 {
				return false
			}
		}
		return true
	}

	if holds(game.MJ, game.BQN, game.BPS, game.MTV) {
		if path, ok := FindCampusSite(g, home); ok {
			if a := game.CampusAction(path); g.IsLegal(a) {
				return a
			}
		}
	}

	if holds(game.BPS, game.BQN) {
		if path, ok := FindVacantARC(g, home); ok {
			if a := game.ARCAction(path); g.IsLegal(a) {
				return a
			}
		}
	}

	if holds(game.MJ, game.MMONEY, game.MTV) {
		return game.SpinoffAction()
	}

	if a, ok := retrainTowardScarcest(g, p); ok {
		return a
	}
	return game.PassAction()
}

// retrainTowardScarcest converts surplus students into the discipline p
// holds fewest of, never dropping a source below its keep level.
func retrainTowardScarcest(g *game.Game, p game.Player) (game.Action, bool) {
	to := game.BPS
	for d := game.BPS; d <= game.MMONEY; d++ {
		if g.Students(p, d) < g.Students(p, to) {
			to = d
		}
	}

	for from := game.BPS; from <= game.MMONEY; from++ {
		if from == to {
			continue
		}
		if g.Students(p, from)-g.ExchangeRate(p, from, to) >= keep[from] {
			a := game.RetrainAction(from, to)
			return a, g.IsLegal(a)
		}
	}
	return game.PassAction(), false
}

func init() {
	registry.Register("turk", func() registry.Strategy {
		return New()
	})
}
