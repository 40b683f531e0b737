// Package maze implements the flashlight maze crawler: the player walks a
// generated maze in the dark, lighting the corridor ahead with a battery
// powered flashlight, and has to find the goal before the light dies.
package maze

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	mc "github.com/vovakirdan/tui-maze/internal/games/maze/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/telemetry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Clear a fixed number of mazes to win
	ModeEndless  Mode = "endless"  // Mazes keep coming until the light dies
)

// clearBannerTicks is how long the "maze cleared" banner stays up.
const clearBannerTicks = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game logs. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the maze crawler.
type Game struct {
	mode   Mode
	rng    *rand.Rand
	runID  uuid.UUID
	tracer trace.Tracer

	cfg        config.MazeConfig
	difficulty *config.DifficultyManager

	tick     uint64
	commands int // Commands applied in the current maze
	score    int
	cleared  int // Mazes cleared this run

	maze        *mc.Maze
	genStats    mc.GenStats
	genErr      error
	player      Player
	fullBattery int // Battery at the start of the current maze

	screenW int
	screenH int

	gameOver        bool
	won             bool
	paused          bool
	levelCleared    bool
	levelClearTicks int
}

// New creates a new campaign mode maze game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode maze game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
	registry.Register("maze_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "maze_endless"
	}
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Flashlight Maze (Endless)"
	}
	return "Flashlight Maze"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Mazes keep growing until your battery runs dry"
	}
	return "Find the goal in the dark, one maze after another"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		logger.Warn("falling back to default maze config", "err", err)
		cfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(rc, cfg)
}

// ResetWithConfig restarts the game with an explicit maze config.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.MazeConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.runID = uuid.New()
	g.tracer = telemetry.Tracer("maze")

	g.tick = 0
	g.score = 0
	g.cleared = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	logger.Info("run started", "run", g.runID, "mode", g.mode, "seed", rc.Seed)
	g.loadLevel()
}

// GenParams returns the generator parameters for the next maze.
func (g *Game) GenParams() mc.GenParams {
	gen := g.cfg.Generator
	return mc.GenParams{
		Size:    g.difficulty.Size(gen.Size, g.cleared),
		Twisty:  gen.Twisty,
		Swirly:  gen.Swirly,
		Branchy: g.difficulty.Branchy(gen.Branchy, g.cleared),
	}
}

// loadLevel generates the next maze and places the player on its start.
func (g *Game) loadLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.commands = 0

	params := g.GenParams()
	m, stats, err := g.generate(params)
	g.maze, g.genStats, g.genErr = m, stats, err
	if err != nil {
		logger.Error("maze generation failed", "run", g.runID, "err", err)
		return
	}

	g.fullBattery = g.difficulty.Battery(g.cfg.Player.Battery, g.cleared)
	g.player = NewPlayer(m.Start(), g.fullBattery, g.cfg.Player.BoostMultiplier)

	// First glimpse before any command; it costs no battery.
	mc.Illuminate(g.maze, g.player.Pos, g.player.Dir, g.player.Power())
}

// generate builds one maze inside a trace span.
func (g *Game) generate(params mc.GenParams) (*mc.Maze, mc.GenStats, error) {
	_, span := g.tracer.Start(context.Background(), "maze.generate",
		trace.WithAttributes(
			attribute.String("run.id", g.runID.String()),
			attribute.Int("maze.level", g.cleared+1),
			attribute.Int("maze.size", params.Size),
			attribute.Int("maze.twisty", params.Twisty),
			attribute.Int("maze.swirly", params.Swirly),
			attribute.Int("maze.branchy", params.Branchy),
		),
	)
	defer span.End()

	gen := mc.NewGenerator(params, g.rng, logger)
	m, err := gen.Generate()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return nil, mc.GenStats{}, fmt.Errorf("level %d: %w", g.cleared+1, err)
	}

	stats := gen.Stats()
	span.SetAttributes(
		attribute.Int("maze.rounds", stats.Rounds),
		attribute.Int("maze.heads", stats.Heads),
		attribute.Int("maze.carved", stats.Carved),
		attribute.Bool("maze.capped", stats.Capped),
	)
	return m, stats, nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won || g.genErr != nil) {
		g.ResetWithConfig(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		}, g.cfg)
		return core.StepResult{State: g.State(), Changed: true}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.gameOver || g.won || g.paused || g.genErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle maze cleared banner
	if g.levelCleared {
		g.levelClearTicks--
		if g.levelClearTicks <= 0 || input.Has(core.ActionConfirm) {
			g.loadLevel()
			return core.StepResult{State: g.State(), Changed: true}
		}
		return core.StepResult{State: g.State()}
	}

	cmd := CommandFromInput(input)
	if cmd == CmdNone || cmd == CmdQuit {
		// Quit is handled by the platform; the maze only reacts to commands.
		return core.StepResult{State: g.State()}
	}
	g.update(cmd)
	return core.StepResult{State: g.State(), Changed: true}
}

// update applies one player command and resolves its outcome.
func (g *Game) update(cmd Command) {
	g.player.Apply(g.maze, cmd)
	g.commands++

	if g.player.Pos == g.maze.Goal() {
		g.clearLevel()
		return
	}
	if g.batteryPercent() <= g.cfg.Player.DeadPercent {
		g.gameOver = true
		logger.Info("light died", "run", g.runID, "level", g.cleared+1, "commands", g.commands, "score", g.score)
	}
}

// clearLevel scores the maze and queues the next one.
func (g *Game) clearLevel() {
	bonus := g.batteryPercent()
	g.score += bonus
	g.cleared++
	logger.Info("maze cleared",
		"run", g.runID,
		"level", g.cleared,
		"commands", g.commands,
		"bonus", bonus,
		"score", g.score,
	)

	if g.mode == ModeCampaign && g.cleared >= g.cfg.Campaign.Levels {
		g.won = true
		return
	}
	g.levelCleared = true
	g.levelClearTicks = clearBannerTicks
}

// batteryPercent returns the battery left as a percentage of a full charge.
func (g *Game) batteryPercent() int {
	if g.fullBattery <= 0 {
		return 0
	}
	return core.Clamp(g.player.Battery*100/g.fullBattery, 0, 100)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.genErr != nil,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Maze returns the current maze, or nil if generation failed.
func (g *Game) Maze() *mc.Maze {
	return g.maze
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// RunID identifies the current run in logs and traces.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}
