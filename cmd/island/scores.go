package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knowledge-island/internal/registry"
	"github.com/vovakirdan/knowledge-island/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [strategy]",
	Short: "Show the leaderboard",
	Long: `Display the best seat results, optionally for a single strategy,
followed by per-strategy statistics.

Examples:
  island scores
  island scores turk --limit 20
  island scores --recent
  island scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent matches instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runScores(cmd *cobra.Command, args []string) error {
	strategy := ""
	if len(args) == 1 {
		strategy = args[0]
		if !registry.Exists(strategy) {
			return fmt.Errorf("unknown strategy %q (run 'island strategies' to list them)", strategy)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("All recorded matches deleted.")
		return nil
	}

	if flagRecent {
		return showRecent(store)
	}

	scores, err := store.TopScores(strategy, flagLimit)
	if err != nil {
		return err
	}

	title := "all strategies"
	if strategy != "" {
		title = strategy
	}
	fmt.Printf("Top KPI - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'island play' to record the first match!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-10s  %-4s  %-3s  %s\n", "Rank", "KPI", "Strategy", "Seat", "Won", "Date")
	fmt.Printf("  %-4s  %-5s  %-10s  %-4s  %-3s  %s\n", "----", "---", "--------", "----", "---", "----")

	for i, e := range scores {
		won := ""
		if e.Won {
			won = "*"
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-10s  %-4s  %-3s  %s\n", i+1, e.KPI, e.Strategy, e.Seat, won, dateStr)
	}

	stats, err := store.AllStrategyStats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-5s  %-7s  %s\n", "Strategy", "Seats", "Wins", "Avg KPI", "Best")
	fmt.Printf("  %-10s  %-6s  %-5s  %-7s  %s\n", "--------", "-----", "----", "-------", "----")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok || (strategy != "" && info.ID != strategy) {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-5d  %-7.1f  %d\n", st.Strategy, st.Seats, st.Wins, st.AvgKPI, st.HighKPI)
	}
	return nil
}

func showRecent(store *storage.Store) error {
	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("  %-36s  %-6s  %-6s  %-10s  %s\n", "Match", "Turns", "Winner", "Strategy", "Date")
	fmt.Printf("  %-36s  %-6s  %-6s  %-10s  %s\n", "-----", "-----", "------", "--------", "----")
	for _, m := range matches {
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-6d  %-6s  %-10s  %s\n", m.MatchID, m.Turns, m.Winner, m.WinnerStrategy, dateStr)
	}
	return nil
}
