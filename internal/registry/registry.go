// Package registry provides a global registry for strategy factories.
// Strategies register themselves in init() functions, allowing the match
// runner to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/knowledge-island/internal/game"
)

// Strategy decides the moves of one seat.
// Strategies only read the game they are given; the runner applies moves.
type Strategy interface {
	// ID returns a unique identifier (e.g., "pass", "turk").
	// Used for CLI flags, config seats and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset prepares the strategy for a new match.
	Reset(seed int64)

	// Decide returns the next action for the seat whose turn it is.
	// Returning Pass ends the turn.
	Decide(g *game.Game) game.Action
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new strategy by its ID.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
