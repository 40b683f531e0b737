package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

const openRoom = `===========
=.........=
=....s....=
=.........=
=.........=
=.........=
=.........=
=.........=
=.........=
=.........=
===========
`

func parse(t *testing.T, src string) *core.Maze {
	t.Helper()
	m, err := core.ParseText(src)
	require.NoError(t, err)
	return m
}

func TestIlluminateCone(t *testing.T) {
	m := parse(t, openRoom)
	origin := m.Start()
	core.Illuminate(m, origin, core.South, 4.0)

	const eps = 1e-9
	assert.InDelta(t, 4.0, m.LightAt(origin), eps)
	assert.GreaterOrEqual(t, m.LightAt(core.P(5, 3)), 2.0)
	assert.GreaterOrEqual(t, m.LightAt(core.P(4, 3)), 1.33)
	assert.GreaterOrEqual(t, m.LightAt(core.P(6, 3)), 1.33)

	// Exact decay along the cone
	assert.InDelta(t, 1.0, m.LightAt(core.P(5, 4)), eps)
	assert.InDelta(t, 2.0/3, m.LightAt(core.P(4, 4)), eps)
	assert.InDelta(t, 4.0/9, m.LightAt(core.P(3, 4)), eps)
	assert.InDelta(t, 0.5, m.LightAt(core.P(5, 5)), eps)
	assert.InDelta(t, 1.0/3, m.LightAt(core.P(6, 5)), eps)

	// Nothing behind the player, nothing past the fading edge
	for tile := range m.Tiles() {
		if tile.Pos.Y < origin.Y || tile.Pos.Y > origin.Y+3 {
			assert.Zero(t, tile.Light, "tile %s", tile.Pos)
		}
		assert.GreaterOrEqual(t, tile.Light, 0.0)
	}
}

func TestIlluminateBelowThresholdLightsOrigin(t *testing.T) {
	m := parse(t, openRoom)
	core.Illuminate(m, m.Start(), core.East, 0.9)

	for tile := range m.Tiles() {
		if tile.Pos == m.Start() {
			assert.InDelta(t, 0.9, tile.Light, 1e-9)
			continue
		}
		assert.Zero(t, tile.Light, "tile %s", tile.Pos)
	}
}

func TestIlluminateStopsAtWalls(t *testing.T) {
	m := parse(t, openRoom)
	// Facing north from row 2: the beam hits the ring after two steps.
	core.Illuminate(m, m.Start(), core.North, 100)

	wall := core.P(5, 0)
	assert.InDelta(t, 25.0, m.LightAt(wall), 1e-9, "walls take light")
	assert.Zero(t, m.LightAt(core.P(5, 9)))

	// A beam started inside a wall lights only that wall.
	core.Illuminate(m, core.P(0, 5), core.East, 100)
	assert.InDelta(t, 100.0, m.LightAt(core.P(0, 5)), 1e-9)
	assert.Zero(t, m.LightAt(core.P(1, 5)))
}

func TestIlluminateResetsPreviousField(t *testing.T) {
	m := parse(t, openRoom)
	core.Illuminate(m, m.Start(), core.South, 20)
	first := m.LightAt(core.P(5, 3))

	core.Illuminate(m, m.Start(), core.South, 20)
	assert.Equal(t, first, m.LightAt(core.P(5, 3)), "light must not accumulate across passes")

	core.Illuminate(m, m.Start(), core.North, 20)
	assert.Zero(t, m.LightAt(core.P(5, 3)))
}

func TestIlluminateTerminatesOnGeneratedMazes(t *testing.T) {
	m, err := core.Generate(params(40), rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	for d := core.North; d <= core.NorthWest; d++ {
		core.Illuminate(m, m.Start(), d, core.Power(8000, 8))
		assert.Greater(t, m.LightAt(m.Start()), 0.0)
		for tile := range m.Tiles() {
			require.GreaterOrEqual(t, tile.Light, 0.0)
		}
	}
}

func TestPower(t *testing.T) {
	assert.InDelta(t, 20.0, core.Power(8000, 1), 1e-9)
	assert.InDelta(t, 160.0, core.Power(8000, 8), 1e-9)
	assert.Zero(t, core.Power(1, 1))
	assert.Zero(t, core.Power(399, 1), "energy is truncated to whole units")
	assert.Equal(t, 1.0, core.Power(400, 1))
	assert.Equal(t, 7.0, core.Power(399, 8))
	assert.Zero(t, core.Power(0, 8))
}
