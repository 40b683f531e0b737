package core

import (
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	// MinSize is the smallest grid that still leaves room for the start margin.
	MinSize = 2*startMargin + 1
	// RecommendedMinSize is the smallest grid that yields a playable maze.
	RecommendedMinSize = 10

	startMargin  = 3
	rootGrowth   = 80
	maxRounds    = 5000
	percentRange = 100
)

// Rand is the random source consumed by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// GenParams configures the path growth generator.
// Twisty, Swirly and Branchy are percentages in [0, 100].
type GenParams struct {
	Size    int // Length of one side of the maze
	Twisty  int // Chance a head keeps going straight
	Swirly  int // Chance a turn goes right rather than left
	Branchy int // Chance, per branch slot, of spawning a new head
}

// DefaultGenParams returns the parameters that make decent mazes.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:    40,
		Twisty:  70,
		Swirly:  50,
		Branchy: 30,
	}
}

// Validate checks the parameters without generating anything.
func (p GenParams) Validate() error {
	if p.Size < MinSize {
		return fmt.Errorf("size %d below %d: %w", p.Size, MinSize, ErrMazeTooSmall)
	}
	for _, v := range []struct {
		name string
		val  int
	}{
		{"twisty", p.Twisty},
		{"swirly", p.Swirly},
		{"branchy", p.Branchy},
	} {
		if v.val < 0 || v.val > percentRange {
			return fmt.Errorf("%s=%d outside [0,100]: %w", v.name, v.val, ErrInvalidParams)
		}
	}
	return nil
}

// GenStats summarizes a generator run.
type GenStats struct {
	Rounds   int // Rounds executed before every head died or the cap was hit
	Heads    int // Heads ever added, root included
	MaxDepth int // Longest parent chain in the head forest
	Carved   int // Tiles turned into Space, start included
	Capped   bool // The round cap stopped heads that could still move
}

// pathHead is a cursor carving one corridor strand.
type pathHead struct {
	pos    Position
	dir    Direction
	growth int
	alive  bool
	parent int // -1 for the root
	depth  int
}

// Generator carves mazes. A Generator is not safe for concurrent use.
type Generator struct {
	params GenParams
	rng    Rand
	logger *log.Logger

	maze  *Maze
	heads []pathHead
	stats GenStats
}

// NewGenerator creates a generator. A nil logger uses the default logger.
func NewGenerator(p GenParams, rng Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{params: p, rng: rng, logger: logger}
}

// Generate is a convenience wrapper around NewGenerator(...).Generate().
func Generate(p GenParams, rng Rand) (*Maze, error) {
	return NewGenerator(p, rng, nil).Generate()
}

// Stats returns the summary of the last Generate call.
func (g *Generator) Stats() GenStats {
	return g.stats
}

// Generate carves a new maze from an all-wall grid.
// The order of random draws is fixed, so a seeded source reproduces the maze.
func (g *Generator) Generate() (*Maze, error) {
	if err := g.params.Validate(); err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}
	size := g.params.Size
	if size < RecommendedMinSize {
		g.logger.Warn("maze size below recommended minimum, corridors will be cramped",
			"size", size, "recommended", RecommendedMinSize)
	}

	g.maze = newMaze(size)
	g.stats = GenStats{}

	span := size - 2*startMargin
	x := g.rng.Intn(span) + startMargin
	y := g.rng.Intn(span) + startMargin
	g.maze.start = P(x, y)
	g.maze.setType(g.maze.start, Space)
	g.stats.Carved = 1

	g.heads = []pathHead{{
		pos:    g.maze.start,
		dir:    South,
		growth: rootGrowth,
		alive:  true,
		parent: -1,
	}}

	active := true
	for active && g.stats.Rounds < maxRounds {
		g.stats.Rounds++
		active = g.round()
	}
	g.stats.Capped = active

	goal := g.rng.Intn(len(g.heads))
	g.maze.goal = g.heads[goal].pos

	g.stats.Heads = len(g.heads)
	for _, h := range g.heads {
		g.stats.MaxDepth = max(g.stats.MaxDepth, h.depth)
	}

	g.logger.Debug("maze generated",
		"size", size,
		"start", g.maze.start,
		"goal", g.maze.goal,
		"rounds", g.stats.Rounds,
		"heads", g.stats.Heads,
		"carved", g.stats.Carved,
	)

	m := g.maze
	g.maze = nil
	g.heads = nil
	return m, nil
}

// round advances every living head once.
// Heads appended during the round are visited in the same round.
// Returns false when no head survived its dead check.
func (g *Generator) round() bool {
	active := false
	for i := 0; i < len(g.heads); i++ {
		if !g.heads[i].alive {
			continue
		}
		if g.advance(i) {
			active = true
		}
	}
	return active
}

// advance runs one growth step for the head at index i.
// Returns false if the head has no legal move left.
func (g *Generator) advance(i int) bool {
	h := g.heads[i]
	if !g.hasMove(h.pos, h.dir) {
		g.heads[i].alive = false
		return false
	}

	if g.rng.Intn(percentRange) >= h.growth {
		return true
	}

	var o Orientation
	switch {
	case g.rng.Intn(percentRange) < g.params.Twisty:
		o = Front
	case g.rng.Intn(percentRange) < g.params.Swirly:
		o = Right
	default:
		o = Left
	}

	g.branch(i, o)

	dir := h.dir.Rel(o)
	g.carve(i, h.pos.Adj(dir), dir)
	return true
}

// branchTurns maps the chosen orientation to the turn used by each branch slot.
func branchTurns(o Orientation) [2]Orientation {
	switch o {
	case Front:
		return [2]Orientation{Right, Left}
	case Left:
		return [2]Orientation{Front, Right}
	case Right:
		return [2]Orientation{Left, Front}
	}
	panic(fmt.Sprintf("core: no branch mapping for orientation %s", o))
}

// branch rolls both branch slots for head i and appends the heads that carve.
func (g *Generator) branch(i int, o Orientation) {
	turns := branchTurns(o)
	for _, turn := range turns {
		if g.rng.Intn(percentRange) >= g.params.Branchy {
			continue
		}
		parent := g.heads[i]
		child := pathHead{
			pos:    parent.pos,
			dir:    parent.dir.Rel(turn),
			growth: g.rng.Intn(percentRange),
			alive:  true,
			parent: i,
			depth:  parent.depth + 1,
		}
		g.heads = append(g.heads, child)
		if !g.carve(len(g.heads)-1, child.pos.Adj(child.dir), child.dir) {
			g.heads = g.heads[:len(g.heads)-1]
		}
	}
}

// carve moves head i to pos if the carve rule allows it, opening pos when it
// is still Wall. The rule never looks at pos itself, so heads may step onto
// corridor that is already open.
func (g *Generator) carve(i int, pos Position, dir Direction) bool {
	if !g.canCarve(pos, dir) {
		return false
	}
	if g.maze.TileAt(pos).Type == Wall {
		g.maze.setType(pos, Space)
		g.stats.Carved++
	}
	g.heads[i].pos = pos
	g.heads[i].dir = dir
	return true
}

// hasMove reports whether any of the straight, left or right steps is carvable.
func (g *Generator) hasMove(pos Position, dir Direction) bool {
	for _, o := range [...]Orientation{Front, Left, Right} {
		d := dir.Rel(o)
		if g.canCarve(pos.Adj(d), d) {
			return true
		}
	}
	return false
}

// canCarve applies the carve rule: pos must be strictly interior and the five
// cells from its left, sweeping clockwise through its right, must all be Wall.
func (g *Generator) canCarve(pos Position, dir Direction) bool {
	last := g.maze.size - 1
	if pos.X <= 0 || pos.X >= last || pos.Y <= 0 || pos.Y >= last {
		return false
	}
	side := dir.Rel(Left)
	for k := 0; k < 5; k++ {
		if g.maze.TileAt(pos.Adj(side.Rel(Orientation(k)))).Type != Wall {
			return false
		}
	}
	return true
}
