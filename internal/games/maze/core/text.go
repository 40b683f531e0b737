package core

import (
	"fmt"
	"strings"
)

// Text maze glyphs.
const (
	GlyphWall   = '='
	GlyphSpace  = '.'
	GlyphBlank  = ' '
	GlyphStart  = 's'
	GlyphGoal   = 'g'
	lineBreak   = '\n'
	carriageRet = '\r'
)

// ParseText reads a maze drawn one row per line: '=' is a wall, '.' or ' '
// is a space, 's' the start and 'g' the goal. When several starts or goals
// appear the last one wins; a missing goal defaults to the start.
// The maze must be square and ringed by walls.
func ParseText(src string) (*Maze, error) {
	src = strings.TrimRight(src, "\n\r")
	if src == "" {
		return nil, fmt.Errorf("empty input: %w", ErrMalformedMaze)
	}
	rows := strings.Split(src, "\n")
	size := len(rows)
	if size < 3 {
		return nil, fmt.Errorf("%d rows, need at least 3: %w", size, ErrMalformedMaze)
	}

	m := newMaze(size)
	var haveStart, haveGoal bool
	for y, row := range rows {
		row = strings.TrimRight(row, string(carriageRet))
		cells := []rune(row)
		if len(cells) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(cells), size, ErrMalformedMaze)
		}
		for x, ch := range cells {
			p := P(x, y)
			switch ch {
			case GlyphWall:
				continue
			case GlyphSpace, GlyphBlank:
			case GlyphStart:
				m.start = p
				haveStart = true
			case GlyphGoal:
				m.goal = p
				haveGoal = true
			default:
				return nil, fmt.Errorf("unknown glyph %q at %s: %w", ch, p, ErrMalformedMaze)
			}
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				return nil, fmt.Errorf("open cell %s on the outer ring: %w", p, ErrMalformedMaze)
			}
			m.setType(p, Space)
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("no start cell: %w", ErrMalformedMaze)
	}
	// FormatText writes only 's' when the goal sits on the start.
	if !haveGoal {
		m.goal = m.start
	}
	return m, nil
}

// FormatText renders the maze in the format read by ParseText.
func FormatText(m *Maze) string {
	var b strings.Builder
	b.Grow(m.size * (m.size + 1))
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			p := P(x, y)
			switch {
			case p == m.start:
				b.WriteRune(GlyphStart)
			case p == m.goal:
				b.WriteRune(GlyphGoal)
			case m.TileAt(p).Type == Space:
				b.WriteRune(GlyphSpace)
			default:
				b.WriteRune(GlyphWall)
			}
		}
		b.WriteRune(lineBreak)
	}
	return b.String()
}

// Light map shades, from dark to bright.
var lightShades = []rune{' ', '░', '▒', '▓', '█'}

// FormatLight renders the light field as shade characters, one row per line.
// Tiles below MinPropagation are blank; brighter tiles step through the
// shades at the given thresholds.
func FormatLight(m *Maze, dim, bright float64) string {
	var b strings.Builder
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			b.WriteRune(shadeFor(m.LightAt(P(x, y)), dim, bright))
		}
		b.WriteRune(lineBreak)
	}
	return b.String()
}

func shadeFor(v, dim, bright float64) rune {
	switch {
	case v < MinPropagation:
		return lightShades[0]
	case v < dim:
		return lightShades[1]
	case v < bright:
		return lightShades[2]
	case v < bright*2:
		return lightShades[3]
	default:
		return lightShades[4]
	}
}
