package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

func TestMazeAccessors(t *testing.T) {
	m := parse(t, openRoom)

	assert.Equal(t, 11, m.Size())
	assert.Equal(t, core.P(5, 2), m.Start())
	assert.Equal(t, m.Start(), m.Goal(), "missing goal defaults to the start")
	assert.Equal(t, 81, m.SpaceCount())

	tile := m.TileAt(core.P(3, 7))
	assert.Equal(t, core.Space, tile.Type)
	assert.Equal(t, core.P(3, 7), tile.Pos)

	assert.True(t, m.InBounds(core.P(0, 10)))
	assert.False(t, m.InBounds(core.P(11, 0)))
	assert.False(t, m.InBounds(core.P(-1, 3)))
	assert.False(t, m.IsSpace(core.P(-1, 3)))

	count := 0
	for range m.Tiles() {
		count++
	}
	assert.Equal(t, 121, count)
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	m := parse(t, openRoom)
	assert.Panics(t, func() { m.TileAt(core.P(11, 0)) })
	assert.Panics(t, func() { m.LightAt(core.P(0, -1)) })
}

func TestTileTypeString(t *testing.T) {
	assert.Equal(t, "Wall", core.Wall.String())
	assert.Equal(t, "Space", core.Space.String())
}
