package turk

import (
	"github.com/vovakirdan/knowledge-island/internal/core"
	"github.com/vovakirdan/knowledge-island/internal/game"
)

// Search limits. A node deeper than the cap is never examined; the budget
// bounds the total number of nodes popped per search.
const (
	arcSearchDepth    = 20
	campusSearchDepth = 15
	searchBudget      = 1 << 12
)

type verdict int

const (
	prune verdict = iota
	follow
	found
)

type frame struct {
	path  string
	depth int
}

// walkFrom explores paths extending start one step at a time, right before
// left, in depth-first order. visit decides whether a path is the answer,
// should be extended, or is a dead end.
func walkFrom(start string, maxDepth int, visit func(path string) verdict) (string, bool) {
	stack := []frame{
		{core.Extend(start, core.StepLeft), 0},
		{core.Extend(start, core.StepRight), 0},
	}

	for budget := searchBudget; len(stack) > 0 && budget > 0; budget-- {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth >= maxDepth {
			continue
		}
		switch visit(f.path) {
		case found:
			return f.path, true
		case follow:
			stack = append(stack,
				frame{core.Extend(f.path, core.StepLeft), f.depth + 1},
				frame{core.Extend(f.path, core.StepRight), f.depth + 1},
			)
		}
	}
	return "", false
}

// FindVacantARC follows the acting player's ARCs outward from start and
// returns the path of the first unowned ARC reached.
func FindVacantARC(g *game.Game, start string) (string, bool) {
	me := g.WhoseTurn()
	return walkFrom(start, arcSearchDepth, func(path string) verdict {
		if !core.DecodeEdge(path).IsValid() {
			return prune
		}
		switch g.ARC(path) {
		case me:
			return follow
		case game.NoOne:
			return found
		}
		return prune
	})
}

// FindCampusSite follows the acting player's ARCs outward from start and
// returns the first vertex where a campus may legally be built.
func FindCampusSite(g *game.Game, start string) (string, bool) {
	me := g.WhoseTurn()
	return walkFrom(start, campusSearchDepth, func(path string) verdict {
		if !core.DecodeVertex(path).IsValid() {
			return prune
		}
		if g.Campus(path).IsVacant() && g.IsLegal(game.CampusAction(path)) {
			return found
		}
		if g.ARC(path) == me {
			return follow
		}
		return prune
	})
}
