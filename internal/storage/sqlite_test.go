package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/knowledge-island/internal/game"
	"github.com/vovakirdan/knowledge-island/internal/match"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// testResult builds a finished match where seat A scored kpis[0], B kpis[1]
// and C kpis[2].
func testResult(id string, winner game.Player, kpis [3]int, strategies [3]string) match.Result {
	r := match.Result{
		MatchID:  id,
		Seed:     42,
		Turns:    120,
		Winner:   winner,
		Reason:   match.EndTargetKPI,
		Duration: 1500 * time.Millisecond,
	}
	if winner == game.NoOne {
		r.Reason = match.EndTurnLimit
	}
	for i, p := range game.Players {
		r.Seats[i] = match.SeatResult{
			Player:   p,
			Strategy: strategies[i],
			KPI:      kpis[i],
			Campuses: 2,
			ARCs:     i,
		}
	}
	return r
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	r := testResult("m-1", game.UniB, [3]int{40, 150, 30}, [3]string{"pass", "turk", "turk"})
	if err := store.SaveMatchResult(r); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.MatchByID("m-1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}

	if got.Winner != game.UniB || got.WinnerStrategy != "turk" {
		t.Errorf("winner = %v/%q, want B/turk", got.Winner, got.WinnerStrategy)
	}
	if got.Seed != 42 || got.Turns != 120 || got.EndReason != string(match.EndTargetKPI) {
		t.Errorf("unexpected match row: %+v", got)
	}
	if got.DurationMillis != 1500 {
		t.Errorf("DurationMillis = %d, want 1500", got.DurationMillis)
	}
	if len(got.Seats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(got.Seats))
	}
	for i, seat := range got.Seats {
		want := r.Seats[i]
		if seat.Seat != want.Player || seat.Strategy != want.Strategy || seat.KPI != want.KPI || seat.ARCs != want.ARCs {
			t.Errorf("seat %d = %+v, want %+v", i, seat, want)
		}
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown match, got %+v", got)
	}
}

func TestStoreDuplicateMatch(t *testing.T) {
	store := openTestStore(t)

	r := testResult("dup", game.UniA, [3]int{150, 20, 20}, [3]string{"turk", "pass", "pass"})
	if err := store.SaveMatchResult(r); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}
	if err := store.SaveMatchResult(r); err == nil {
		t.Error("expected an error saving the same match twice")
	}

	// The failed save must not leave extra seats behind.
	got, err := store.MatchByID("dup")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if len(got.Seats) != 3 {
		t.Errorf("expected 3 seats after rejected duplicate, got %d", len(got.Seats))
	}
}

func TestStoreTurnLimitMatch(t *testing.T) {
	store := openTestStore(t)

	r := testResult("draw", game.NoOne, [3]int{20, 20, 20}, [3]string{"pass", "pass", "pass"})
	if err := store.SaveMatchResult(r); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.MatchByID("draw")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got.Winner != game.NoOne || got.WinnerStrategy != "" {
		t.Errorf("winner = %v/%q, want none", got.Winner, got.WinnerStrategy)
	}
	if got.EndReason != string(match.EndTurnLimit) {
		t.Errorf("EndReason = %q, want %q", got.EndReason, match.EndTurnLimit)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	results := []match.Result{
		testResult("m-1", game.UniA, [3]int{160, 20, 40}, [3]string{"turk", "pass", "turk"}),
		testResult("m-2", game.UniC, [3]int{60, 20, 150}, [3]string{"turk", "pass", "turk"}),
	}
	for _, r := range results {
		if err := store.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		strategy string
		limit    int
		want     []int
	}{
		{"turk only", "turk", 10, []int{160, 150, 60, 40}},
		{"pass only", "pass", 10, []int{20, 20}},
		{"limited", "turk", 2, []int{160, 150}},
		{"all strategies", "", 3, []int{160, 150, 60}},
		{"unknown", "nobody", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores(tt.strategy, tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, s := range scores {
				if s.KPI != tt.want[i] {
					t.Errorf("score[%d] = %d, want %d", i, s.KPI, tt.want[i])
				}
			}
		})
	}

	top, _ := store.TopScores("turk", 1)
	if !top[0].Won || top[0].Seat != game.UniA || top[0].MatchID != "m-1" {
		t.Errorf("unexpected top entry: %+v", top[0])
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		r := testResult(fmt.Sprintf("m-%d", i), game.UniA, [3]int{150, 20, 20}, [3]string{"turk", "pass", "pass"})
		if err := store.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(recent))
	}
	// Rows saved within the same second fall back to insertion order.
	if recent[0].MatchID != "m-4" {
		t.Errorf("newest match = %q, want m-4", recent[0].MatchID)
	}
}

func TestStoreStrategyStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatchResult(testResult("m-1", game.UniA, [3]int{150, 20, 40}, [3]string{"turk", "pass", "turk"}))
	store.SaveMatchResult(testResult("m-2", game.NoOne, [3]int{60, 20, 80}, [3]string{"turk", "pass", "turk"}))

	stats, err := store.AllStrategyStats()
	if err != nil {
		t.Fatalf("AllStrategyStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 strategies, got %d", len(stats))
	}

	turk := stats["turk"]
	if turk.Seats != 4 || turk.Wins != 1 || turk.HighKPI != 150 {
		t.Errorf("turk stats = %+v", turk)
	}
	if turk.AvgKPI != 82.5 {
		t.Errorf("turk AvgKPI = %v, want 82.5", turk.AvgKPI)
	}

	pass := stats["pass"]
	if pass.Seats != 2 || pass.Wins != 0 || pass.HighKPI != 20 {
		t.Errorf("pass stats = %+v", pass)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatchResult(testResult("m-1", game.UniA, [3]int{150, 20, 20}, [3]string{"turk", "pass", "pass"}))

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, _ := store.RecentMatches(10)
	if len(recent) != 0 {
		t.Errorf("expected no matches after clear, got %d", len(recent))
	}
	scores, _ := store.TopScores("", 10)
	if len(scores) != 0 {
		t.Errorf("expected no seats after clear, got %d", len(scores))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := testResult(fmt.Sprintf("c-%d", i), game.UniA, [3]int{150, 20, 20}, [3]string{"turk", "pass", "pass"})
			errs <- store.SaveMatchResult(r)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent save failed: %v", err)
		}
	}

	recent, _ := store.RecentMatches(20)
	if len(recent) != 8 {
		t.Errorf("expected 8 matches, got %d", len(recent))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
