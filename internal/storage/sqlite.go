// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/match"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// SeatRecord is one seat of a stored match.
type SeatRecord struct {
	Seat         game.Player
	Strategy     string
	KPI          int
	Campuses     int
	GO8s         int
	ARCs         int
	Patents      int
	Publications int
}

// MatchRecord is a stored match with its seats.
type MatchRecord struct {
	ID             int64
	MatchID        string
	Seed           int64
	Turns          int
	Winner         game.Player
	WinnerStrategy string
	EndReason      string
	DurationMillis int64
	CreatedAt      time.Time
	Seats          []SeatRecord
}

// ScoreEntry is a single seat result on the leaderboard.
type ScoreEntry struct {
	MatchID   string
	Strategy  string
	Seat      game.Player
	KPI       int
	Won       bool
	CreatedAt time.Time
}

// StrategyStats contains aggregated statistics for a strategy.
type StrategyStats struct {
	Strategy   string
	Seats      int
	Wins       int
	HighKPI    int
	AvgKPI     float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Series runs save from several goroutines; SQLite takes one writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			winner_strategy TEXT,
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS match_seats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			kpi INTEGER NOT NULL,
			campuses INTEGER NOT NULL,
			go8s INTEGER NOT NULL,
			arcs INTEGER NOT NULL,
			patents INTEGER NOT NULL,
			publications INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			UNIQUE (match_id, seat)
		);
		CREATE INDEX IF NOT EXISTS idx_match_seats_strategy ON match_seats(strategy);
		CREATE INDEX IF NOT EXISTS idx_match_seats_top ON match_seats(strategy, kpi DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatchResult implements match.ResultSaver.
// The match row and its three seat rows are written in one transaction.
func (s *Store) SaveMatchResult(r match.Result) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO matches (match_id, seed, turns, winner, winner_strategy, end_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Seed, r.Turns, int(r.Winner), r.WinnerStrategy(), string(r.Reason), r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}

	for _, seat := range r.Seats {
		_, err = tx.Exec(
			`INSERT INTO match_seats
			 (match_id, seat, strategy, kpi, campuses, go8s, arcs, patents, publications, won)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.MatchID, int(seat.Player), seat.Strategy, seat.KPI, seat.Campuses,
			seat.GO8s, seat.ARCs, seat.Patents, seat.Publications, seat.Player == r.Winner,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save seat %s: %w", seat.Player, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return nil
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

const matchColumns = `id, match_id, seed, turns, winner, winner_strategy, end_reason, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var m MatchRecord
	var winner int
	var winnerStrategy sql.NullString
	var createdAt any

	if err := row.Scan(&m.ID, &m.MatchID, &m.Seed, &m.Turns, &winner, &winnerStrategy,
		&m.EndReason, &m.DurationMillis, &createdAt); err != nil {
		return m, err
	}
	m.Winner = game.Player(winner)
	if winnerStrategy.Valid {
		m.WinnerStrategy = winnerStrategy.String
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func (s *Store) seats(matchID string) ([]SeatRecord, error) {
	rows, err := s.db.Query(
		`SELECT seat, strategy, kpi, campuses, go8s, arcs, patents, publications
		 FROM match_seats WHERE match_id = ? ORDER BY seat`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seats: %w", err)
	}
	defer rows.Close()

	var seats []SeatRecord
	for rows.Next() {
		var sr SeatRecord
		var seat int
		if err := rows.Scan(&seat, &sr.Strategy, &sr.KPI, &sr.Campuses, &sr.GO8s,
			&sr.ARCs, &sr.Patents, &sr.Publications); err != nil {
			return nil, fmt.Errorf("storage: cannot scan seat: %w", err)
		}
		sr.Seat = game.Player(seat)
		seats = append(seats, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return seats, nil
}

// MatchByID retrieves a match and its seats. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	if m.Seats, err = s.seats(matchID); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first, without seats.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// TopScores retrieves the N best seat results ordered by KPI descending.
// An empty strategy matches every strategy.
func (s *Store) TopScores(strategy string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT ms.match_id, ms.strategy, ms.seat, ms.kpi, ms.won, m.created_at
		 FROM match_seats ms JOIN matches m ON m.match_id = ms.match_id
		 WHERE ? = '' OR ms.strategy = ?
		 ORDER BY ms.kpi DESC, ms.id ASC
		 LIMIT ?`,
		strategy, strategy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var seat int
		var createdAt any
		if err := rows.Scan(&e.MatchID, &e.Strategy, &seat, &e.KPI, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Seat = game.Player(seat)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// AllStrategyStats retrieves statistics for every strategy that has played.
func (s *Store) AllStrategyStats() (map[string]*StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT ms.strategy, COUNT(*), SUM(ms.won), MAX(ms.kpi), AVG(ms.kpi), MAX(m.created_at)
		 FROM match_seats ms JOIN matches m ON m.match_id = ms.match_id
		 GROUP BY ms.strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StrategyStats)
	for rows.Next() {
		var st StrategyStats
		var lastPlayed any
		if err := rows.Scan(&st.Strategy, &st.Seats, &st.Wins, &st.HighKPI, &st.AvgKPI, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Strategy] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearMatches deletes every stored match.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM match_seats"); err != nil {
		return fmt.Errorf("storage: cannot clear seats: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
