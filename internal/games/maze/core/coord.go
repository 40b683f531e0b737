// Package core provides the maze model and its two engines: the branching
// path-growth generator and the flashlight light propagation.
// This package is UI-agnostic and deterministic for a given random source.
package core

import "fmt"

// Direction is one of the eight compass directions on the grid.
// Values are cyclic: arithmetic is modulo DirectionCount.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the number of directions in a full turn.
const DirectionCount = 8

// Orientation is a turn relative to a facing direction.
// It shares the cyclic ordering of Direction, so Front is a zero turn.
type Orientation int

const (
	Front Orientation = iota
	FrontRight
	Right
	BackRight
	Back
	BackLeft
	Left
	FrontLeft
)

// Normalize reduces any integer to a Direction in [0, 8).
func Normalize(v int) Direction {
	for v < 0 || v >= DirectionCount {
		if v < 0 {
			v += DirectionCount
		}
		if v >= DirectionCount {
			v -= DirectionCount
		}
	}
	return Direction(v)
}

// Rel returns the direction obtained by turning d by o.
func (d Direction) Rel(o Orientation) Direction {
	return Normalize(int(d) + int(o))
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return d.Rel(Back)
}

// Delta returns the (dx, dy) unit offset for one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch Normalize(int(d)) {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	}
	panic(fmt.Sprintf("core: unreachable direction %d", int(d)))
}

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a compass abbreviation (case sensitive, as printed by String).
func ParseDirection(s string) (Direction, bool) {
	for d := North; d <= NorthWest; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return North, false
}

// String returns the name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Front:
		return "Front"
	case FrontRight:
		return "FrontRight"
	case Right:
		return "Right"
	case BackRight:
		return "BackRight"
	case Back:
		return "Back"
	case BackLeft:
		return "BackLeft"
	case Left:
		return "Left"
	case FrontLeft:
		return "FrontLeft"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Position is a grid cell address.
// X increases to the right, Y increases downward.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adj returns the neighboring position one step in direction d.
func (p Position) Adj(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}
