package mathmono

import (
	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

// Resolver turns eat actions into eaten blocks and keeps labels in step.
type Resolver struct {
	board *Board
}

// NewResolver creates a resolver for a board.
func NewResolver(board *Board) *Resolver {
	return &Resolver{board: board}
}

// Resolve eats the block under pos if the frame carries ActionEat.
func (r *Resolver) Resolve(pos grid.Position, in core.InputFrame) (*Block, bool) {
	if !in.Has(core.ActionEat) {
		return nil, false
	}
	return r.Eat(pos)
}

// Eat marks the uneaten block at pos as eaten and returns it.
// Already eaten or empty positions are a no-op.
func (r *Resolver) Eat(pos grid.Position) (*Block, bool) {
	blk := r.board.At(pos)
	if blk == nil || blk.eaten {
		return nil, false
	}
	blk.markEaten()
	return blk, true
}

// UpdateLabels hides the labels of blocks eaten since the previous call
// and returns how many labels changed.
func (r *Resolver) UpdateLabels() int {
	n := 0
	for _, blk := range r.board.blocks {
		if !blk.labelDirty {
			continue
		}
		blk.Label.Visible = !blk.eaten
		blk.labelDirty = false
		n++
	}
	return n
}
