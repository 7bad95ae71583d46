package mathmono

import (
	"math"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

const (
	hudRows = 2

	// Smallest block that still fits a three-digit label.
	minBlockCols = 3
	minBlockRows = 1

	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0
)

// Projection maps world coordinates (origin at the grid center, y up) to
// screen cells (origin top-left, y down). The grid is scaled to fill the
// play area below the HUD.
type Projection struct {
	ScreenW, ScreenH int
	UnitsX, UnitsY   float64   // World units per cell
	OriginX, OriginY float64   // Cell coordinates of the world origin
	Window           grid.Vec2 // Visible world size
	TooSmall         bool
}

// NewProjection fits layout into a screen of the given size.
func NewProjection(screenW, screenH int, layout grid.Layout, block grid.Vec2) Projection {
	p := Projection{ScreenW: screenW, ScreenH: screenH}

	availW := float64(screenW)
	availH := float64(screenH - hudRows)
	if availW <= 0 || availH <= 0 {
		p.TooSmall = true
		return p
	}

	p.UnitsY = math.Max(layout.TotalSize.Y/availH, cellAspect*layout.TotalSize.X/availW)
	p.UnitsX = p.UnitsY / cellAspect
	p.OriginX = availW / 2
	p.OriginY = hudRows + availH/2
	p.Window = grid.V(availW*p.UnitsX, availH*p.UnitsY)
	p.TooSmall = block.X/p.UnitsX < minBlockCols || block.Y/p.UnitsY < minBlockRows
	return p
}

// Cell returns the fractional cell coordinates of a world point.
func (p Projection) Cell(v grid.Vec2) (float64, float64) {
	return p.OriginX + v.X/p.UnitsX, p.OriginY - v.Y/p.UnitsY
}

// Rect returns the cell rectangle covering a world box.
func (p Projection) Rect(center, size grid.Vec2) core.Rect {
	x0, y0 := p.Cell(grid.V(center.X-size.X/2, center.Y+size.Y/2))
	x1, y1 := p.Cell(grid.V(center.X+size.X/2, center.Y-size.Y/2))

	left, top := int(math.Round(x0)), int(math.Round(y0))
	right, bottom := int(math.Round(x1)), int(math.Round(y1))
	return core.NewRect(left, top, right-left, bottom-top)
}

// PlayArea returns the screen region below the HUD.
func (p Projection) PlayArea() core.Rect {
	return core.NewRect(0, hudRows, p.ScreenW, max(p.ScreenH-hudRows, 0))
}
