// Package passer implements the simplest seat: it turns spare MJ, MTV and
// MMONEY students into spinoffs and otherwise passes.
package passer

import (
	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/registry"
)

// Strategy is "Mr Pass".
type Strategy struct{}

// New creates the strategy.
func New() *Strategy {
	return &Strategy{}
}

func (s *Strategy) ID() string    { return "pass" }
func (s *Strategy) Title() string { return "Mr Pass" }
func (s *Strategy) Reset(int64)   {}

// Decide starts a spinoff whenever one is affordable.
func (s *Strategy) Decide(g *game.Game) game.Action {
	p := g.WhoseTurn()
	if g.Students(p, game.MJ) > 0 && g.Students(p, game.MTV) > 0 && g.Students(p, game.MMONEY) > 0 {
		return game.SpinoffAction()
	}
	return game.PassAction()
}

func init() {
	registry.Register("pass", func() registry.Strategy {
		return New()
	})
}
