package config

import (
	_ "embed"

	"github.com/vovakirdan/knowledge-island/internal/game"
)

//go:embed defaults/island.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded default configuration.
func Default() Config {
	names := make([]string, 0, 19)
	for _, d := range game.DefaultDisciplines() {
		names = append(names, d.String())
	}
	return Config{
		Board: BoardConfig{
			Disciplines: names,
			Dice:        game.DefaultDice(),
		},
		Match: MatchConfig{
			MaxTurns:          3000,
			TargetKPI:         150,
			MaxActionsPerTurn: 64,
			Seats:             []string{"turk", "turk", "turk"},
		},
	}
}
