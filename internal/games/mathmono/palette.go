package mathmono

import (
	"math"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

// SpawnColor is the initial color of the block at pos: a gradient that
// shifts toward red going up and toward green going right.
func SpawnColor(pos grid.Position) core.Color {
	row, col := float64(pos.Row), float64(pos.Col)
	return core.RGB(0.2+0.1*row, 0.6+0.05*col, 0.8-0.1*row)
}

// AnimatedColor is the color of a block with the given value t seconds
// into the session. Blocks with different values drift out of phase.
func AnimatedColor(t float64, value int, blue float64) core.Color {
	v := float64(value)
	r := math.Sin(t+v*0.1)*0.5 + 0.5
	g := math.Sin(t+v*0.2)*0.5 + 0.5
	return core.RGB(r, g, blue)
}
