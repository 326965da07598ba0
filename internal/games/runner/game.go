// Package runner implements a three-lane runner: the player holds a fixed
// row near the bottom while trophies and hazards fall down the lanes.
// Catching an object adds its value to the score; objects that reach the
// bottom vanish without scoring.
package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trophy-runner/internal/assets"
	"github.com/vovakirdan/trophy-runner/internal/config"
	"github.com/vovakirdan/trophy-runner/internal/core"
	"github.com/vovakirdan/trophy-runner/internal/registry"
)

// HUD layout in playfield pixels
const (
	hintY        = 40
	hintFontSize = 14
	scoreY       = 80
	scoreFont    = 16
	minRows      = 10
)

var (
	configPath  string
	spritesPath string
	logger      = log.New(io.Discard)
)

// SetConfigPath sets the custom config path set via CLI.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpritesPath sets a custom sprite sheet path set via CLI.
func SetSpritesPath(path string) {
	spritesPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game owns the live objects, the frame counter and the score.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	scale   core.Scale
	field   Playfield
	cols    int
	rows    int
	catalog *assets.Catalog
	spawner *SpawnPolicy
	player  Player
	objects []*ScoringObject
	frame   int
	score   int
	stats   Stats
	events  []Event
	log     *log.Logger
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Trophy Runner"
}

// Reset loads config and sprites, then starts a new session sized to the
// host display.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}

	g.reset(runtime, cfg, loadCatalog())
}

func loadCatalog() *assets.Catalog {
	if spritesPath != "" {
		catalog, err := assets.LoadFile(spritesPath, logger)
		if err == nil {
			return catalog
		}
		logger.Warn("using default sprite sheet", "error", err)
	}
	catalog, err := assets.Default(logger)
	if err != nil {
		panic(fmt.Sprintf("runner: embedded sprite sheet is broken: %v", err))
	}
	return catalog
}

// reset starts a session with explicit config and sprites.
// The playfield is computed here and stays fixed until the next reset.
func (g *Game) reset(runtime core.RuntimeConfig, cfg config.RunnerConfig, catalog *assets.Catalog) {
	g.runtime = runtime
	g.cfg = cfg
	g.catalog = catalog
	g.log = logger
	g.scale = core.Scale{ColumnPx: cfg.Playfield.ColumnPx, RowPx: cfg.Playfield.RowPx}

	g.cols = max(runtime.ScreenW/cfg.Playfield.WidthRatio, cfg.Playfield.MinColumns)
	g.rows = max(runtime.ScreenH, minRows)
	w, h := g.scale.Pixels(g.cols, g.rows)
	g.field = NewPlayfield(w, h)

	g.spawner = NewSpawnPolicy(runtime.Seed, g.field, cfg, catalog)
	g.player = NewLanePlayer(g.field, catalog.Image(cfg.Player.Sprite), cfg.Player.BottomOffset, cfg.Player.LaneSwitchSpeed)

	g.objects = nil
	g.frame = 0
	g.score = 0
	g.stats = Stats{}
	// Frame 0 seeds exactly one object before the first tick
	g.events = []Event{g.spawn()}
}

// spawn adds one random object and returns its event.
func (g *Game) spawn() Event {
	obj := g.spawner.CreateRandom()
	g.objects = append(g.objects, obj)
	return g.record(Event{
		Kind:     EventSpawned,
		Frame:    g.frame,
		ObjectID: obj.id,
		Variant:  obj.kind,
		Lane:     obj.lane,
	})
}

func (g *Game) record(e Event) Event {
	g.stats.record(e)
	g.log.Debug(e.Kind.String(),
		"frame", e.Frame,
		"object", e.ObjectID,
		"variant", e.Variant,
		"lane", e.Lane,
		"points", e.Points,
	)
	return e
}

// Tick advances the simulation by one frame and returns what happened.
//
// The frame counter advances first, then the spawn check, the player, and
// every live object in turn. Each object is moved and tested exactly once:
// survivors are compacted in place behind the read cursor, so removals never
// skip or repeat an object.
func (g *Game) Tick() []Event {
	g.frame++
	var events []Event

	if g.spawner.Due(g.frame) {
		events = append(events, g.spawn())
	}

	g.player.Move()
	playerBox := g.player.BoundingBox()

	live := g.objects[:0]
	for _, obj := range g.objects {
		obj.Move()

		switch {
		case playerBox.Intersects(obj.BoundingBox()):
			obj.remove(StateCollected)
			g.score += obj.Points()
			events = append(events, g.record(Event{
				Kind:     EventCollected,
				Frame:    g.frame,
				ObjectID: obj.id,
				Variant:  obj.kind,
				Lane:     obj.lane,
				Points:   obj.Points(),
			}))
		case obj.CollidesWithPlayfieldBottom(g.field.Height):
			obj.remove(StateExited)
			events = append(events, g.record(Event{
				Kind:     EventExited,
				Frame:    g.frame,
				ObjectID: obj.id,
				Variant:  obj.kind,
				Lane:     obj.lane,
			}))
		default:
			live = append(live, obj)
		}
	}
	clear(g.objects[len(live):])
	g.objects = live

	g.events = events
	return events
}

// Step applies lane input to the player and advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if steer, ok := g.player.(LaneSteerer); ok {
		switch in.LaneAction() {
		case core.ActionLeft:
			steer.SetLane(LaneLeft)
		case core.ActionMiddle:
			steer.SetLane(LaneMiddle)
		case core.ActionRight:
			steer.SetLane(LaneRight)
		}
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// Draw renders the HUD, the player and every live object onto a surface.
func (g *Game) Draw(s core.Surface) {
	s.Clear(g.field.Bounds())

	cx := g.field.Width / 2
	s.DrawText(g.cfg.HUD.Hint, cx, hintY, hintFontSize, core.ColorRed, core.AlignCenter)
	s.DrawText(fmt.Sprintf("Score: %d", g.score), cx, scoreY, scoreFont, core.ColorRed, core.AlignCenter)

	g.player.Draw(s)
	for _, obj := range g.objects {
		obj.Draw(s)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(core.NewScreenSurface(dst, g.scale))
}

// ScreenSize returns the cell size of the playfield.
func (g *Game) ScreenSize() (int, int) {
	return g.cols, g.rows
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Frame:  g.frame,
		Score:  g.score,
		Active: len(g.objects),
	}
}

// Frame returns the number of ticks since reset.
func (g *Game) Frame() int { return g.frame }

// Score returns the total score.
func (g *Game) Score() int { return g.score }

// Playfield returns the fixed simulation area.
func (g *Game) Playfield() Playfield { return g.field }

// Stats returns lifecycle counters since reset.
func (g *Game) Stats() Stats { return g.stats }

// Events returns what happened during the last tick, or the seed spawn
// right after reset.
func (g *Game) Events() []Event { return g.events }

// Player returns the player collaborator.
func (g *Game) Player() Player { return g.player }

// Objects returns the live objects. The slice is a copy.
func (g *Game) Objects() []*ScoringObject {
	out := make([]*ScoringObject, len(g.objects))
	copy(out, g.objects)
	return out
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
