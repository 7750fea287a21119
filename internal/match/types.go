// Package match drives complete games: it rolls the dice, asks each seat's
// strategy for moves, applies them and reports the outcome.
package match

import (
	"time"

	"github.com/vovakirdan/knowledge-island/internal/game"
)

// EndReason describes why a match stopped.
type EndReason string

const (
	EndTargetKPI EndReason = "target_kpi"
	EndTurnLimit EndReason = "turn_limit"
)

// SeatResult is the final tally of one seat.
type SeatResult struct {
	Player       game.Player
	Strategy     string
	KPI          int
	Campuses     int
	GO8s         int
	ARCs         int
	Patents      int
	Publications int
}

// Result is the outcome of one match.
type Result struct {
	MatchID  string
	Seed     int64
	Turns    int
	Winner   game.Player // NoOne when the turn limit was hit
	Reason   EndReason
	Seats    [game.NumPlayers]SeatResult
	Duration time.Duration
}

// WinnerStrategy returns the strategy ID of the winning seat, or "".
func (r Result) WinnerStrategy() string {
	if !r.Winner.Valid() {
		return ""
	}
	return r.Seats[r.Winner-1].Strategy
}

// TurnRecord describes one turn after all of its actions were applied.
type TurnRecord struct {
	MatchID  string
	Turn     int
	Player   game.Player
	Strategy string
	Dice     int
	Actions  []game.Action
	Rejected int // proposals refused by the engine
	State    game.Snapshot
}

// ResultSaver is an interface for saving match results.
// This allows the runner to save results without depending on the storage package.
type ResultSaver interface {
	SaveMatchResult(result Result) error
}

// Recorder receives every turn of a match as it is played.
type Recorder interface {
	RecordTurn(rec TurnRecord)
}
