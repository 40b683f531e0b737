package maze

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	mc "github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

// Command is one player instruction. Each command consumes one tick of battery.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdMoveNorth
	CmdMoveSouth
	CmdMoveEast
	CmdMoveWest
	CmdRun
	CmdToggleFlashlight
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdQuit:
		return "quit"
	case CmdMoveNorth:
		return "move_north"
	case CmdMoveSouth:
		return "move_south"
	case CmdMoveEast:
		return "move_east"
	case CmdMoveWest:
		return "move_west"
	case CmdRun:
		return "run"
	case CmdToggleFlashlight:
		return "flashlight"
	default:
		return "unknown"
	}
}

// CommandFromInput picks the command carried by an input frame.
// When several actions arrive in one frame, movement wins over run and the
// flashlight switch.
func CommandFromInput(in core.InputFrame) Command {
	switch {
	case in.Has(core.ActionQuit):
		return CmdQuit
	case in.Has(core.ActionNorth):
		return CmdMoveNorth
	case in.Has(core.ActionSouth):
		return CmdMoveSouth
	case in.Has(core.ActionEast):
		return CmdMoveEast
	case in.Has(core.ActionWest):
		return CmdMoveWest
	case in.Has(core.ActionRun):
		return CmdRun
	case in.Has(core.ActionFlashlight):
		return CmdToggleFlashlight
	default:
		return CmdNone
	}
}

// moveDirection maps the move commands to compass directions.
func moveDirection(c Command) (mc.Direction, bool) {
	switch c {
	case CmdMoveNorth:
		return mc.North, true
	case CmdMoveSouth:
		return mc.South, true
	case CmdMoveEast:
		return mc.East, true
	case CmdMoveWest:
		return mc.West, true
	default:
		return 0, false
	}
}

// switchOff is the flashlight multiplier in its normal position.
const switchOff = 1

// Player is the crawler holding the flashlight.
type Player struct {
	Pos     mc.Position
	Dir     mc.Direction
	Battery int
	Switch  int // 1, or the boost multiplier while boosted

	boost int
}

// NewPlayer places a player on start facing south with the switch off.
func NewPlayer(start mc.Position, battery, boost int) Player {
	return Player{
		Pos:     start,
		Dir:     mc.South,
		Battery: battery,
		Switch:  switchOff,
		boost:   max(boost, switchOff),
	}
}

// Power returns the energy the flashlight emits right now.
func (p *Player) Power() float64 {
	return mc.Power(p.Battery, p.Switch)
}

// Boosted reports whether the flashlight switch is in the boost position.
func (p *Player) Boosted() bool {
	return p.Switch != switchOff
}

// Move turns the player to face dir, or steps one cell if it already faces
// dir and that cell is open. Turning costs a whole command.
// Returns true if the player turned or stepped.
func (p *Player) Move(m *mc.Maze, dir mc.Direction) bool {
	if p.Dir != dir {
		p.Dir = dir
		return true
	}
	next := p.Pos.Adj(dir)
	if !m.IsSpace(next) {
		return false
	}
	p.Pos = next
	return true
}

// Run steps forward; at a blocked corner with exactly one open side it turns
// toward that side instead.
func (p *Player) Run(m *mc.Maze) bool {
	if p.Move(m, p.Dir) {
		return true
	}
	left := p.Dir.Rel(mc.Left)
	right := p.Dir.Rel(mc.Right)
	openLeft := m.IsSpace(p.Pos.Adj(left))
	openRight := m.IsSpace(p.Pos.Adj(right))
	switch {
	case openLeft && !openRight:
		p.Dir = left
	case openRight && !openLeft:
		p.Dir = right
	default:
		return false
	}
	return true
}

// Toggle flips the flashlight switch between off and boost.
func (p *Player) Toggle() {
	if p.Switch == switchOff {
		p.Switch = p.boost
	} else {
		p.Switch = switchOff
	}
}

// Drain spends one command worth of battery.
func (p *Player) Drain() {
	p.Battery = max(p.Battery-p.Switch, 0)
}

// Apply executes one command against the maze: the beam power is taken
// before the command, the light field is recomputed after it, then the
// battery drains.
func (p *Player) Apply(m *mc.Maze, c Command) {
	power := p.Power()

	switch c {
	case CmdToggleFlashlight:
		p.Toggle()
	case CmdRun:
		p.Run(m)
	default:
		if dir, ok := moveDirection(c); ok {
			p.Move(m, dir)
		}
	}

	mc.Illuminate(m, p.Pos, p.Dir, power)
	p.Drain()
}
