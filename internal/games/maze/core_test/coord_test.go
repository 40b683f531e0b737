package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

func TestNormalizeIsTotalAndIdempotent(t *testing.T) {
	for v := -100; v <= 100; v++ {
		d := core.Normalize(v)
		assert.GreaterOrEqual(t, int(d), 0, "v=%d", v)
		assert.Less(t, int(d), core.DirectionCount, "v=%d", v)
		assert.Equal(t, d, core.Normalize(int(d)), "v=%d", v)
	}
	assert.Equal(t, core.East, core.Normalize(10))
	assert.Equal(t, core.NorthWest, core.Normalize(-1))
}

func TestRelCoversAllDirections(t *testing.T) {
	for d := core.North; d <= core.NorthWest; d++ {
		seen := map[core.Direction]bool{}
		for o := core.Front; o <= core.FrontLeft; o++ {
			seen[d.Rel(o)] = true
		}
		assert.Len(t, seen, core.DirectionCount, "from %s", d)
	}
}

func TestRelComposes(t *testing.T) {
	for d := core.North; d <= core.NorthWest; d++ {
		for o1 := core.Front; o1 <= core.FrontLeft; o1++ {
			for o2 := core.Front; o2 <= core.FrontLeft; o2++ {
				want := d.Rel(core.Orientation(core.Normalize(int(o1) + int(o2))))
				assert.Equal(t, want, d.Rel(o1).Rel(o2), "%s + %s + %s", d, o1, o2)
			}
		}
	}
}

func TestAdjRoundTrip(t *testing.T) {
	p := core.P(5, 5)
	for d := core.North; d <= core.NorthWest; d++ {
		assert.Equal(t, p, p.Adj(d).Adj(d.Opposite()), "direction %s", d)
	}
}

func TestGeometryScenarios(t *testing.T) {
	assert.Equal(t, core.P(5, 4), core.P(5, 5).Adj(core.North))
	assert.Equal(t, core.P(6, 6), core.P(5, 5).Adj(core.SouthEast))
	assert.Equal(t, core.P(4, 6), core.P(5, 5).Adj(core.SouthWest))
	assert.Equal(t, core.East, core.South.Rel(core.Left))
	assert.Equal(t, core.West, core.South.Rel(core.Right))
	assert.Equal(t, core.SouthEast, core.South.Rel(core.FrontLeft))
	assert.Equal(t, core.North, core.South.Opposite())
}

func TestDirectionStrings(t *testing.T) {
	for d := core.North; d <= core.NorthWest; d++ {
		got, ok := core.ParseDirection(d.String())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}
	_, ok := core.ParseDirection("up")
	assert.False(t, ok)

	assert.Equal(t, "FrontLeft", core.FrontLeft.String())
}
