package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knowledge-island/internal/config"
	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List strategies and the configured seating",
	Long: `Shows every strategy that can take a seat, which of the seats
A, B and C the current config gives it, and the match limits.`,
	Args: cobra.NoArgs,
	RunE: runStrategies,
}

func runStrategies(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	writeStrategies(cmd.OutOrStdout(), registry.List(), cfg.Match)
	return nil
}

// seatsOf returns the seat letters assigned to id, e.g. "A,C", or "-".
func seatsOf(id string, seats []string) string {
	var out []string
	for i, s := range seats {
		if s == id && i < game.NumPlayers {
			out = append(out, game.Players[i].String())
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func writeStrategies(w io.Writer, strategies []registry.StrategyInfo, m config.MatchConfig) {
	if len(strategies) == 0 {
		fmt.Fprintln(w, "No strategies available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxIDLen, "ID", "Seats", "Title")
	fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, s := range strategies {
		fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxIDLen, s.ID, seatsOf(s.ID, m.Seats), s.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Seating A/B/C: %s\n", strings.Join(m.Seats, "/"))
	fmt.Fprintf(w, "First to %d KPI wins; matches stop after %d turns.\n", m.TargetKPI, m.MaxTurns)
	for _, id := range m.Seats {
		if !registry.Exists(id) {
			fmt.Fprintf(w, "Warning: seat strategy %q is not registered.\n", id)
		}
	}
}
