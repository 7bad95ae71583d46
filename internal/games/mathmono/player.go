package mathmono

import (
	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

// Player is the marker moved across the board.
type Player struct {
	Pos       grid.Position
	World     grid.Vec2 // Follows Pos through the Synchronizer
	Score     int
	Health    int
	MaxHealth int
}

// Alive reports whether the player has health left.
func (p Player) Alive() bool {
	return p.Health > 0
}

// MovePlayer applies the directional actions of one tick to pos.
// Every direction present in the frame is applied, then the result is
// clamped to the grid once, so opposite directions cancel and nothing wraps.
// It reports whether the position changed.
func MovePlayer(pos grid.Position, in core.InputFrame, cfg grid.Config) (grid.Position, bool) {
	next := pos
	moved := false

	if in.Has(core.ActionUp) {
		next.Row++
		moved = true
	}
	if in.Has(core.ActionDown) {
		next.Row--
		moved = true
	}
	if in.Has(core.ActionLeft) {
		next.Col--
		moved = true
	}
	if in.Has(core.ActionRight) {
		next.Col++
		moved = true
	}

	if !moved {
		return pos, false
	}
	next = grid.Clamp(next, cfg)
	return next, next != pos
}
