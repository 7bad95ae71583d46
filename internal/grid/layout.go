package grid

// Layout is the derived extent of a grid. It is never stored on its own;
// recompute it from the Config it came from.
type Layout struct {
	TotalSize  Vec2
	BottomLeft Vec2
}

// ComputeLayout returns the total grid size and the bottom-left corner that
// centers the grid on the world origin.
func ComputeLayout(cfg Config) Layout {
	total := Vec2{
		X: float64(cfg.Cols)*(cfg.BlockSize.X+cfg.Gap) - cfg.Gap,
		Y: float64(cfg.Rows)*(cfg.BlockSize.Y+cfg.Gap) - cfg.Gap,
	}
	return Layout{
		TotalSize:  total,
		BottomLeft: total.Scale(-0.5),
	}
}

// BlockCenter returns the world position of the center of block (row, col).
// bottomLeft must come from ComputeLayout with the same cfg.
func BlockCenter(cfg Config, bottomLeft Vec2, row, col int) Vec2 {
	offset := Vec2{X: float64(col), Y: float64(row)}.Mul(cfg.Stride())
	return bottomLeft.Add(offset).Add(cfg.BlockSize.Scale(0.5))
}

// PositionCenter is BlockCenter for a Position.
func (l Layout) PositionCenter(cfg Config, p Position) Vec2 {
	return BlockCenter(cfg, l.BottomLeft, p.Row, p.Col)
}

// Panel is an axis-aligned box in world units.
type Panel struct {
	Center Vec2
	Size   Vec2
}

// Min returns the bottom-left corner of the panel.
func (p Panel) Min() Vec2 {
	return p.Center.Sub(p.Size.Scale(0.5))
}

// Max returns the top-right corner of the panel.
func (p Panel) Max() Vec2 {
	return p.Center.Add(p.Size.Scale(0.5))
}

// UnplayableMargin is the width of the empty strip on each side of a grid of
// width gridW centered in a window of width windowW.
func UnplayableMargin(windowW, gridW float64) float64 {
	return (windowW - gridW) / 2
}

// QuestionPanel places a text box in the left margin of the window, vertically
// centered on the grid. usable is the fraction of the margin kept as padding.
// The panel has zero width when the grid fills the window.
func QuestionPanel(window Vec2, layout Layout, usable float64) Panel {
	margin := max(UnplayableMargin(window.X, layout.TotalSize.X), 0)
	size := Vec2{
		X: margin - margin*usable,
		Y: layout.TotalSize.Y / 2,
	}
	leftEdge := layout.BottomLeft.X - margin
	return Panel{
		Center: Vec2{X: leftEdge + margin/2, Y: 0},
		Size:   size,
	}
}
