// Package config provides YAML-based configuration for the board layout and
// match settings.
package config

import (
	"fmt"

	"github.com/vovakirdan/knowledge-island/internal/game"
)

// Config is the complete configuration file.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Match MatchConfig `yaml:"match"`
}

// BoardConfig lists the 19 regions in construction order.
type BoardConfig struct {
	Disciplines []string `yaml:"disciplines"`
	Dice        []int    `yaml:"dice"`
}

// MatchConfig controls how a match is driven.
type MatchConfig struct {
	MaxTurns          int      `yaml:"max_turns"`
	TargetKPI         int      `yaml:"target_kpi"`
	MaxActionsPerTurn int      `yaml:"max_actions_per_turn"`
	Seats             []string `yaml:"seats"` // strategy IDs for A, B, C
}

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for structural errors.
// Strategy IDs are checked by the caller against the registry.
func (c Config) Validate() error {
	if _, _, err := c.Layout(); err != nil {
		return err
	}

	m := c.Match
	if m.MaxTurns <= 0 {
		return FieldError{"match.max_turns", "must be positive"}
	}
	if m.TargetKPI <= 0 {
		return FieldError{"match.target_kpi", "must be positive"}
	}
	if m.MaxActionsPerTurn <= 0 {
		return FieldError{"match.max_actions_per_turn", "must be positive"}
	}
	if len(m.Seats) != game.NumPlayers {
		return FieldError{"match.seats", fmt.Sprintf("need %d seats, got %d", game.NumPlayers, len(m.Seats))}
	}
	for i, s := range m.Seats {
		if s == "" {
			return FieldError{fmt.Sprintf("match.seats[%d]", i), "empty strategy id"}
		}
	}
	return nil
}

// Layout converts the board section into the arrays game.New expects.
func (c Config) Layout() ([]game.Discipline, []int, error) {
	b := c.Board
	if len(b.Disciplines) != 19 {
		return nil, nil, FieldError{"board.disciplines", fmt.Sprintf("need 19 entries, got %d", len(b.Disciplines))}
	}
	if len(b.Dice) != 19 {
		return nil, nil, FieldError{"board.dice", fmt.Sprintf("need 19 entries, got %d", len(b.Dice))}
	}

	disciplines := make([]game.Discipline, len(b.Disciplines))
	for i, name := range b.Disciplines {
		d, err := game.ParseDiscipline(name)
		if err != nil {
			return nil, nil, FieldError{fmt.Sprintf("board.disciplines[%d]", i), err.Error()}
		}
		disciplines[i] = d
	}
	for i, v := range b.Dice {
		if v < game.MinTrigger || v > game.MaxTrigger {
			return nil, nil, FieldError{fmt.Sprintf("board.dice[%d]", i), fmt.Sprintf("%d is outside %d..%d", v, game.MinTrigger, game.MaxTrigger)}
		}
	}

	return disciplines, append([]int(nil), b.Dice...), nil
}
