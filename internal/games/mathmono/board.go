package mathmono

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

// ErrDuplicateBlock is returned when a block is added at an occupied position.
var ErrDuplicateBlock = errors.New("mathmono: duplicate block position")

// Label is the number text drawn on a block.
type Label struct {
	Text    string
	Visible bool
}

// Block is one numbered cell of the board.
type Block struct {
	Pos   grid.Position
	World grid.Vec2 // Center in world coordinates
	Value int
	Label Label
	Color core.Color

	eaten      bool
	labelDirty bool // eaten changed since the last label pass
}

// Eaten reports whether the player has eaten this block.
func (b *Block) Eaten() bool {
	return b.eaten
}

func (b *Block) markEaten() {
	b.eaten = true
	b.labelDirty = true
}

// Board owns the blocks of a session and indexes them by position.
// Each position holds at most one block.
type Board struct {
	blocks []*Block
	index  map[grid.Position]*Block
}

// NewBoard creates an empty board.
func NewBoard(capacity int) *Board {
	return &Board{
		blocks: make([]*Block, 0, capacity),
		index:  make(map[grid.Position]*Block, capacity),
	}
}

// Add places a block on the board.
func (b *Board) Add(blk *Block) error {
	if _, taken := b.index[blk.Pos]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateBlock, blk.Pos)
	}
	b.blocks = append(b.blocks, blk)
	b.index[blk.Pos] = blk
	return nil
}

// At returns the block at pos, or nil.
func (b *Board) At(pos grid.Position) *Block {
	return b.index[pos]
}

// Blocks returns blocks in insertion order. The slice must not be modified.
func (b *Board) Blocks() []*Block {
	return b.blocks
}

// Len returns the number of blocks.
func (b *Board) Len() int {
	return len(b.blocks)
}

// EatenCount returns how many blocks have been eaten.
func (b *Board) EatenCount() int {
	n := 0
	for _, blk := range b.blocks {
		if blk.eaten {
			n++
		}
	}
	return n
}

// Remaining returns how many blocks are still uneaten.
func (b *Board) Remaining() int {
	return len(b.blocks) - b.EatenCount()
}

// Uneaten returns the blocks not yet eaten, in insertion order.
func (b *Board) Uneaten() []*Block {
	out := make([]*Block, 0, len(b.blocks))
	for _, blk := range b.blocks {
		if !blk.eaten {
			out = append(out, blk)
		}
	}
	return out
}
