package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/knowledge-island/internal/config"
	"github.com/vovakirdan/knowledge-island/internal/export"
	"github.com/vovakirdan/knowledge-island/internal/match"
	"github.com/vovakirdan/knowledge-island/internal/registry"
	"github.com/vovakirdan/knowledge-island/internal/storage"
)

var (
	flagGames   int
	flagWorkers int
	flagSeats   []string
	flagParquet string
	flagFormat  string
	flagNoSave  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play matches between strategies",
	Long: `Play one or more matches and record the results.

Seats are filled A, B, C from --seats, or from match.seats in the config.
Match N of a series uses seed+N, so a series is reproducible from its seed.

Output formats:
  auto - text on a terminal, JSON otherwise
  text - one line per match plus a win summary
  json - one object per match

Examples:
  island play
  island play --seats turk,pass,pass --seed 42
  island play --games 500 --workers 8 --format json
  island play --parquet ./turns.parquet --no-save`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagGames, "games", 1, "Number of matches to play")
	playCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Matches played in parallel")
	playCmd.Flags().StringSliceVar(&flagSeats, "seats", nil, "Strategy IDs for seats A, B and C")
	playCmd.Flags().StringVar(&flagParquet, "parquet", "", "Write a per-turn log to this Parquet file")
	playCmd.Flags().StringVar(&flagFormat, "format", "auto", "Output format: auto, text, json")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if len(flagSeats) > 0 {
		cfg.Match.Seats = flagSeats
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	for _, id := range cfg.Match.Seats {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown strategy %q (run 'island strategies' to list them)", id)
		}
	}

	opts, err := match.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	runner, err := match.NewRunner(opts, logger)
	if err != nil {
		return err
	}

	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - matches still run
			logger.Warn("could not open results database", "error", err)
		} else {
			defer store.Close()
			runner.SetResultSaver(store)
		}
	}

	var turns *export.TurnLog
	if flagParquet != "" {
		turns = export.NewTurnLog()
		runner.SetRecorder(turns)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("playing", "games", flagGames, "seats", cfg.Match.Seats, "seed", seed)
	results, err := runner.Series(ctx, flagGames, seed, flagWorkers)
	if err != nil {
		return err
	}

	if turns != nil {
		if err := turns.WriteFile(flagParquet); err != nil {
			return err
		}
		logger.Info("turn log written", "path", flagParquet, "turns", turns.Len())
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeResultsJSON(out, results)
	}
	writeResultsText(out, results)
	return nil
}

// outputFormat resolves "auto" by checking whether stdout is a terminal.
func outputFormat(f string) (string, error) {
	switch f {
	case "text", "json":
		return f, nil
	case "auto":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "text", nil
		}
		return "json", nil
	}
	return "", fmt.Errorf("unknown format %q (want auto, text or json)", f)
}

type seatJSON struct {
	Seat         string `json:"seat"`
	Strategy     string `json:"strategy"`
	KPI          int    `json:"kpi"`
	Campuses     int    `json:"campuses"`
	GO8s         int    `json:"go8s"`
	ARCs         int    `json:"arcs"`
	Patents      int    `json:"patents"`
	Publications int    `json:"publications"`
}

type resultJSON struct {
	MatchID        string     `json:"match_id"`
	Seed           int64      `json:"seed"`
	Turns          int        `json:"turns"`
	Winner         string     `json:"winner"`
	WinnerStrategy string     `json:"winner_strategy,omitempty"`
	Reason         string     `json:"reason"`
	DurationMillis int64      `json:"duration_ms"`
	Seats          []seatJSON `json:"seats"`
}

func writeResultsJSON(w io.Writer, results []match.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		out := resultJSON{
			MatchID:        r.MatchID,
			Seed:           r.Seed,
			Turns:          r.Turns,
			Winner:         r.Winner.String(),
			WinnerStrategy: r.WinnerStrategy(),
			Reason:         string(r.Reason),
			DurationMillis: r.Duration.Milliseconds(),
		}
		for _, s := range r.Seats {
			out.Seats = append(out.Seats, seatJSON{
				Seat:         s.Player.String(),
				Strategy:     s.Strategy,
				KPI:          s.KPI,
				Campuses:     s.Campuses,
				GO8s:         s.GO8s,
				ARCs:         s.ARCs,
				Patents:      s.Patents,
				Publications: s.Publications,
			})
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}

func writeResultsText(w io.Writer, results []match.Result) {
	fmt.Fprintf(w, "  %-20s  %-6s  %-6s  %-10s  %-10s  %s\n", "Seed", "Turns", "Winner", "Strategy", "Reason", "KPI A/B/C")
	fmt.Fprintf(w, "  %-20s  %-6s  %-6s  %-10s  %-10s  %s\n", "----", "-----", "------", "--------", "------", "---------")

	wins := make(map[string]int)
	for _, r := range results {
		fmt.Fprintf(w, "  %-20d  %-6d  %-6s  %-10s  %-10s  %d/%d/%d\n",
			r.Seed, r.Turns, r.Winner, r.WinnerStrategy(), r.Reason,
			r.Seats[0].KPI, r.Seats[1].KPI, r.Seats[2].KPI)
		if id := r.WinnerStrategy(); id != "" {
			wins[id]++
		}
	}

	if len(results) < 2 {
		return
	}

	ids := make([]string, 0, len(wins))
	for id := range wins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if wins[ids[i]] != wins[ids[j]] {
			return wins[ids[i]] > wins[ids[j]]
		}
		return ids[i] < ids[j]
	})

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Wins over %d matches:\n", len(results))
	for _, id := range ids {
		fmt.Fprintf(w, "  %-10s  %d\n", id, wins[id])
	}
}
