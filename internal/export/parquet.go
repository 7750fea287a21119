// Package export writes per-turn match logs to Parquet files for offline
// analysis of strategies.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/match"
)

// SchemaVersion is stored in the file metadata under the "schema" key.
const SchemaVersion = "island_turn_v1"

// SeatRow holds the counters of one seat after a turn.
type SeatRow struct {
	Player       string `parquet:"player,dict" json:"player"`
	KPI          int32  `parquet:"kpi" json:"kpi"`
	ARCs         int32  `parquet:"arcs" json:"arcs"`
	Campuses     int32  `parquet:"campuses" json:"campuses"`
	GO8s         int32  `parquet:"go8s" json:"go8s"`
	Patents      int32  `parquet:"patents" json:"patents"`
	Publications int32  `parquet:"publications" json:"publications"`
	// Students and Rates are indexed by discipline (THD..MMONEY)
	Students []int32 `parquet:"students" json:"students"`
	Rates    []int32 `parquet:"rates" json:"rates"`
}

// TurnRow is one played turn.
type TurnRow struct {
	MatchID  string   `parquet:"match_id,dict" json:"match_id"`
	Turn     int32    `parquet:"turn" json:"turn"`
	Player   string   `parquet:"player,dict" json:"player"`
	Strategy string   `parquet:"strategy,dict" json:"strategy"`
	Dice     int32    `parquet:"dice" json:"dice"`
	Actions  []string `parquet:"actions" json:"actions"`
	Rejected int32    `parquet:"rejected" json:"rejected"`

	MostARCs         string    `parquet:"most_arcs,dict" json:"most_arcs"`
	MostPublications string    `parquet:"most_publications,dict" json:"most_publications"`
	GO8Count         int32     `parquet:"go8_count" json:"go8_count"`
	Seats            []SeatRow `parquet:"seats" json:"seats"`
}

// TurnLog buffers turns in memory. It implements match.Recorder and is safe
// for use by concurrent matches.
type TurnLog struct {
	mu   sync.Mutex
	rows []TurnRow
}

var _ match.Recorder = (*TurnLog)(nil)

// NewTurnLog creates an empty log.
func NewTurnLog() *TurnLog {
	return &TurnLog{}
}

// RecordTurn implements match.Recorder.
func (l *TurnLog) RecordTurn(rec match.TurnRecord) {
	row := toRow(rec)
	l.mu.Lock()
	l.rows = append(l.rows, row)
	l.mu.Unlock()
}

// Len returns the number of buffered turns.
func (l *TurnLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rows)
}

// Rows returns a copy of the buffered turns.
func (l *TurnLog) Rows() []TurnRow {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]TurnRow(nil), l.rows...)
}

func toRow(rec match.TurnRecord) TurnRow {
	row := TurnRow{
		MatchID:          rec.MatchID,
		Turn:             int32(rec.Turn),
		Player:           rec.Player.String(),
		Strategy:         rec.Strategy,
		Dice:             int32(rec.Dice),
		Rejected:         int32(rec.Rejected),
		MostARCs:         rec.State.MostARCs.String(),
		MostPublications: rec.State.MostPublications.String(),
		GO8Count:         int32(rec.State.GO8Count),
		Actions:          make([]string, len(rec.Actions)),
		Seats:            make([]SeatRow, 0, game.NumPlayers),
	}
	for i, a := range rec.Actions {
		row.Actions[i] = a.String()
	}
	for _, ps := range rec.State.Players {
		seat := SeatRow{
			Player:       ps.Player.String(),
			KPI:          int32(ps.KPI),
			ARCs:         int32(ps.ARCs),
			Campuses:     int32(ps.Campuses),
			GO8s:         int32(ps.GO8s),
			Patents:      int32(ps.Patents),
			Publications: int32(ps.Publications),
			Students:     make([]int32, game.NumDisciplines),
			Rates:        make([]int32, game.NumDisciplines),
		}
		for d := 0; d < game.NumDisciplines; d++ {
			seat.Students[d] = int32(ps.Students[d])
			seat.Rates[d] = int32(ps.Rates[d])
		}
		row.Seats = append(row.Seats, seat)
	}
	return row
}

// WriteFile writes the buffered turns to path. The file is written under a
// temporary name and renamed into place.
func (l *TurnLog) WriteFile(path string) error {
	rows := l.Rows()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SchemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export: rename parquet: %w", err)
	}
	return nil
}

// ReadFile loads every turn from a file written by WriteFile.
func ReadFile(path string) ([]TurnRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("export: open parquet: %w", err)
	}
	if v, ok := pf.Lookup("schema"); ok && v != SchemaVersion {
		return nil, fmt.Errorf("export: unsupported schema %q", v)
	}

	reader := parquet.NewGenericReader[TurnRow](pf)
	defer reader.Close()

	rows := make([]TurnRow, reader.NumRows())
	if len(rows) == 0 {
		return nil, nil
	}
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("export: read parquet: %w", err)
	}
	return rows[:n], nil
}
