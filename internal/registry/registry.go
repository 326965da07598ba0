// Package registry maps game ids to factories. Game packages add themselves
// from init(), so hosts and the CLI can start a game by id without
// importing it by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

// Game is what a host needs to run a game. Implementations hold pure
// simulation state; input mapping, frame scheduling and terminal output
// belong to the host.
type Game interface {
	// ID is the stable name used on the command line.
	ID() string
	// Title is the display name.
	Title() string

	// Reset starts a fresh session sized from cfg. The playfield derived
	// from it stays fixed until the next Reset.
	Reset(cfg core.RuntimeConfig)
	// Step advances one frame with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current frame into dst.
	Render(dst *core.Screen)
	// ScreenSize is the cell size Render expects after Reset.
	ScreenSize() (w, h int)
	// State summarizes the session for the host.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet reset, game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is read from one throwaway
// instance. Registering an id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
