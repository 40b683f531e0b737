package maze

import mc "github.com/vovakirdan/tui-maze/internal/games/maze/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StateBroken       GameStateType = "generation_failed"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    int    // Current maze (1-indexed for display)
	Mode     string // "campaign" or "endless"
	Score    int
	Commands int
	Size     int
	Start    mc.Position
	Goal     mc.Position
	Pos      mc.Position
	Dir      mc.Direction
	Battery  int
	Switch   int
	Light    float64 // Light on the player's tile
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.genErr != nil:
		state = StateBroken
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:     g.tick,
		Level:    g.cleared + 1,
		Mode:     string(g.mode),
		Score:    g.score,
		Commands: g.commands,
		Pos:      g.player.Pos,
		Dir:      g.player.Dir,
		Battery:  g.player.Battery,
		Switch:   g.player.Switch,
		State:    state,
	}
	if g.maze != nil {
		s.Size = g.maze.Size()
		s.Start = g.maze.Start()
		s.Goal = g.maze.Goal()
		s.Light = g.maze.LightAt(g.player.Pos)
	}
	return s
}
