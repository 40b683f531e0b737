// Package registry keeps the factories of every playable game.
// Games register themselves in init() functions, so the platform and the
// CLI can list and create them without importing concrete packages.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games hold pure simulation state; the platform owns timing, input mapping
// and the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "maze").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary for listings.
	Description() string

	// Reset initializes or restarts the game from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
