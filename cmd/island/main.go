// island runs Knowledge Island matches between scripted strategies.
//
// Usage:
//
//	island strategies          - List available strategies
//	island play                - Play one or more matches
//	island scores [strategy]   - Show the leaderboard and strategy stats
//	island decode <path>...    - Show where a path lands on the board
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible matches
//	--db <path>          - Set database path (default: ~/.island/results.db)
//	--config <path>      - Use a custom board/match config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// ISLAND_DB, ISLAND_CONFIG and ISLAND_LOG_LEVEL (also read from .env) supply
// defaults for flags that are not given on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/knowledge-island/internal/strategy/passer"
	_ "github.com/vovakirdan/knowledge-island/internal/strategy/turk"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

// envFlags maps environment variables to the global flags they default.
var envFlags = map[string]string{
	"ISLAND_DB":        "db",
	"ISLAND_CONFIG":    "config",
	"ISLAND_LOG_LEVEL": "log-level",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "island",
	Short: "Knowledge Island - university rivalry on a hexagonal island",
	Long: `Knowledge Island is a three-player resource and territory game.
Universities A, B and C build campuses, ARC grants and GO8 upgrades
while chasing KPI points. This tool plays matches between scripted
strategies and keeps the results.

Available commands:
  strategies - Show all available strategies
  play       - Play matches and record the results
  scores     - View the leaderboard
  decode     - Translate paths to board coordinates

Examples:
  island strategies
  island play --seats turk,pass,turk --games 100
  island scores turk
  island decode RRLRL RRLRLB`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.island/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(decodeCmd)
}

// setup applies .env and environment defaults, then builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	flags := cmd.Flags()
	for env, name := range envFlags {
		v := os.Getenv(env)
		f := flags.Lookup(name)
		if v == "" || f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "island",
		Level:           level,
	})
	return nil
}
