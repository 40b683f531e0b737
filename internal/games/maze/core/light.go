package core

// Beam divisors: the primary beam halves each step, side beams lose two thirds.
const (
	PrimaryDivisor   = 2.0
	SecondaryDivisor = 3.0

	// MinPropagation is the energy a tile needs to pass light onwards.
	MinPropagation = 1.0
)

// beamKind identifies which part of the flashlight cone a beam belongs to.
type beamKind uint8

const (
	beamPrimary beamKind = iota
	beamLeft
	beamRight
)

type beam struct {
	value float64
	pos   Position
	kind  beamKind
}

// Illuminate clears the light field and casts a flashlight cone from pos
// facing dir with the given initial energy.
//
// Every reached tile accumulates the beam's energy, walls included, but only
// Space tiles with at least MinPropagation energy pass light further.
// The primary beam continues straight at half energy and spawns two side
// beams at a third; each side beam only continues diagonally outward along
// the primary beam's facing, so the cone never widens back.
func Illuminate(m *Maze, pos Position, dir Direction, power float64) {
	m.resetLight()

	frontLeft := dir.Rel(FrontLeft)
	frontRight := dir.Rel(FrontRight)

	// Depth is logarithmic in power, so the stack stays small.
	stack := []beam{{value: power, pos: pos, kind: beamPrimary}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m.addLight(b.pos, b.value)
		if b.value < MinPropagation || m.TileAt(b.pos).Type != Space {
			continue
		}

		side := b.value / SecondaryDivisor
		switch b.kind {
		case beamPrimary:
			// Pushed in reverse so the forward beam is processed first.
			stack = append(stack,
				beam{value: side, pos: b.pos.Adj(frontRight), kind: beamRight},
				beam{value: side, pos: b.pos.Adj(frontLeft), kind: beamLeft},
				beam{value: b.value / PrimaryDivisor, pos: b.pos.Adj(dir), kind: beamPrimary},
			)
		case beamLeft:
			stack = append(stack, beam{value: side, pos: b.pos.Adj(frontLeft), kind: beamLeft})
		case beamRight:
			stack = append(stack, beam{value: side, pos: b.pos.Adj(frontRight), kind: beamRight})
		}
	}
}

// Power converts the player's battery and flashlight switch into beam energy.
// Energy comes in whole units, so a nearly flat battery casts no light.
func Power(battery, switchMultiplier int) float64 {
	return float64(battery * switchMultiplier * 4 / 1600)
}
