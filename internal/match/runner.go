package match

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/knowledge-island/internal/config"
	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/registry"
)

// Options configures a Runner.
type Options struct {
	Seats             [game.NumPlayers]string // strategy IDs for A, B, C
	Disciplines       []game.Discipline
	Dice              []int
	MaxTurns          int
	TargetKPI         int
	MaxActionsPerTurn int
}

// OptionsFromConfig builds runner options from a validated configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	disciplines, dice, err := cfg.Layout()
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Disciplines:       disciplines,
		Dice:              dice,
		MaxTurns:          cfg.Match.MaxTurns,
		TargetKPI:         cfg.Match.TargetKPI,
		MaxActionsPerTurn: cfg.Match.MaxActionsPerTurn,
	}
	if len(cfg.Match.Seats) != game.NumPlayers {
		return Options{}, fmt.Errorf("match: need %d seats, got %d", game.NumPlayers, len(cfg.Match.Seats))
	}
	copy(opts.Seats[:], cfg.Match.Seats)
	return opts, nil
}

// Runner plays matches with a fixed seating and rule set.
type Runner struct {
	opts     Options
	logger   *log.Logger
	saver    ResultSaver // Optional, can be nil
	recorder Recorder    // Optional, can be nil
}

// NewRunner creates a runner. A nil logger discards output.
// Every seat must name a registered strategy.
func NewRunner(opts Options, logger *log.Logger) (*Runner, error) {
	for i, id := range opts.Seats {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("match: seat %s: unknown strategy %q", game.Players[i], id)
		}
	}
	if _, err := game.New(opts.Disciplines, opts.Dice); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	if opts.MaxTurns <= 0 || opts.TargetKPI <= 0 || opts.MaxActionsPerTurn <= 0 {
		return nil, fmt.Errorf("match: turn, KPI and action limits must be positive")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{opts: opts, logger: logger}, nil
}

// SetResultSaver sets the optional match result saver.
func (r *Runner) SetResultSaver(saver ResultSaver) {
	r.saver = saver
}

// SetRecorder sets the optional turn recorder.
func (r *Runner) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// Play runs one match to completion. The seed fixes the dice, the spinoff
// outcomes and every strategy's choices.
func (r *Runner) Play(ctx context.Context, seed int64) (Result, error) {
	res := Result{MatchID: uuid.NewString(), Seed: seed, Reason: EndTurnLimit}
	started := time.Now()

	g, err := game.New(r.opts.Disciplines, r.opts.Dice)
	if err != nil {
		return res, fmt.Errorf("match: %w", err)
	}

	var seats [game.NumPlayers]registry.Strategy
	for i, id := range r.opts.Seats {
		s, err := registry.Create(id)
		if err != nil {
			return res, fmt.Errorf("match: %w", err)
		}
		s.Reset(seed + int64(i) + 1)
		seats[i] = s
	}

	rng := rand.New(rand.NewSource(seed))
	logger := r.logger.With("match", res.MatchID)
	logger.Debug("match started", "seed", seed, "seats", r.opts.Seats)

	for g.TurnNumber()+1 < r.opts.MaxTurns {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dice := rollDice(rng)
		g.ThrowDice(dice)
		p := g.WhoseTurn()
		strategy := seats[p-1]

		rec := TurnRecord{
			MatchID:  res.MatchID,
			Turn:     g.TurnNumber(),
			Player:   p,
			Strategy: strategy.ID(),
			Dice:     dice,
		}
		r.playTurn(logger, g, strategy, rng, &rec)
		rec.State = g.Snapshot()
		if r.recorder != nil {
			r.recorder.RecordTurn(rec)
		}

		if g.KPI(p) >= r.opts.TargetKPI {
			res.Winner = p
			res.Reason = EndTargetKPI
			break
		}
	}

	res.Turns = g.TurnNumber() + 1
	res.Duration = time.Since(started)
	for i, p := range game.Players {
		res.Seats[i] = SeatResult{
			Player:       p,
			Strategy:     r.opts.Seats[i],
			KPI:          g.KPI(p),
			Campuses:     g.Campuses(p),
			GO8s:         g.GO8s(p),
			ARCs:         g.ARCs(p),
			Patents:      g.Patents(p),
			Publications: g.Publications(p),
		}
	}

	logger.Info("match finished",
		"winner", res.Winner,
		"strategy", res.WinnerStrategy(),
		"reason", res.Reason,
		"turns", res.Turns,
	)

	if r.saver != nil {
		if err := r.saver.SaveMatchResult(res); err != nil {
			return res, fmt.Errorf("match: cannot save result: %w", err)
		}
	}
	return res, nil
}

// playTurn asks the acting strategy for moves until it passes, proposes an
// illegal move, or exhausts the per-turn action budget.
func (r *Runner) playTurn(logger *log.Logger, g *game.Game, s registry.Strategy, rng *rand.Rand, rec *TurnRecord) {
	for n := 0; n < r.opts.MaxActionsPerTurn; n++ {
		a := s.Decide(g.Clone())
		if a.Kind == game.Pass {
			return
		}
		if a.Kind == game.StartSpinoff {
			a = resolveSpinoff(rng)
		}
		if err := g.Apply(a); err != nil {
			rec.Rejected++
			logger.Warn("action rejected", "seat", rec.Player, "strategy", s.ID(), "action", a.String(), "error", err)
			return
		}
		logger.Debug("action", "turn", rec.Turn, "seat", rec.Player, "action", a.String())
		rec.Actions = append(rec.Actions, a)
	}
	logger.Warn("action budget exhausted", "seat", rec.Player, "strategy", s.ID(), "turn", rec.Turn)
}

// rollDice returns the total of two six-sided dice.
func rollDice(rng *rand.Rand) int {
	return rng.Intn(6) + 1 + rng.Intn(6) + 1
}

// resolveSpinoff turns a spinoff into a patent one time in three and a
// publication otherwise.
func resolveSpinoff(rng *rand.Rand) game.Action {
	if rng.Intn(3) == 0 {
		return game.Action{Kind: game.ObtainPatent}
	}
	return game.Action{Kind: game.ObtainPublication}
}
