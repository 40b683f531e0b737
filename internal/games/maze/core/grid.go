package core

import (
	"errors"
	"fmt"
	"iter"
)

// TileType is the terrain of a single maze cell.
type TileType uint8

const (
	Wall TileType = iota
	Space
)

// String returns the name of the tile type.
func (t TileType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Space:
		return "Space"
	default:
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
}

// Tile is a single maze cell with its accumulated light.
type Tile struct {
	Type  TileType
	Light float64
	Pos   Position
}

var (
	// ErrMazeTooSmall is returned when the grid leaves no room for a start margin.
	ErrMazeTooSmall = errors.New("maze too small")
	// ErrInvalidParams is returned for generator probabilities outside [0, 100].
	ErrInvalidParams = errors.New("invalid generator parameters")
	// ErrMalformedMaze is returned when a text maze cannot be parsed.
	ErrMalformedMaze = errors.New("malformed maze")
)

// Maze is a square grid of tiles with start and goal positions.
// Tiles are stored in row-major order on X: index = x*size + y.
// Only the generator may change tile types; after generation only light changes.
type Maze struct {
	size  int
	tiles []Tile
	start Position
	goal  Position
}

// newMaze creates a maze with every tile set to Wall.
func newMaze(size int) *Maze {
	m := &Maze{
		size:  size,
		tiles: make([]Tile, size*size),
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			m.tiles[x*size+y] = Tile{Type: Wall, Pos: P(x, y)}
		}
	}
	return m
}

// Size returns the length of one side of the maze.
func (m *Maze) Size() int {
	return m.size
}

// Start returns the start position.
func (m *Maze) Start() Position {
	return m.start
}

// Goal returns the goal position.
func (m *Maze) Goal() Position {
	return m.goal
}

// InBounds returns true if the position lies inside the grid.
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.size && p.Y >= 0 && p.Y < m.size
}

// index converts a position to a tile index.
// Out-of-bounds access is a caller bug and panics.
func (m *Maze) index(p Position) int {
	if !m.InBounds(p) {
		panic(fmt.Sprintf("core: position %s outside %dx%d maze", p, m.size, m.size))
	}
	return p.X*m.size + p.Y
}

// TileAt returns the tile at p. Panics if p is out of bounds.
func (m *Maze) TileAt(p Position) Tile {
	return m.tiles[m.index(p)]
}

// LightAt returns the light accumulated at p. Panics if p is out of bounds.
func (m *Maze) LightAt(p Position) float64 {
	return m.tiles[m.index(p)].Light
}

// IsSpace reports whether p is inside the grid and carved.
func (m *Maze) IsSpace(p Position) bool {
	return m.InBounds(p) && m.tiles[m.index(p)].Type == Space
}

// SpaceCount returns the number of carved tiles.
func (m *Maze) SpaceCount() int {
	n := 0
	for i := range m.tiles {
		if m.tiles[i].Type == Space {
			n++
		}
	}
	return n
}

// Tiles iterates over every tile in storage order.
func (m *Maze) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range m.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

func (m *Maze) setType(p Position, t TileType) {
	m.tiles[m.index(p)].Type = t
}

func (m *Maze) addLight(p Position, v float64) {
	m.tiles[m.index(p)].Light += v
}

func (m *Maze) resetLight() {
	for i := range m.tiles {
		m.tiles[i].Light = 0
	}
}
