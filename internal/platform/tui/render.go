package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mathmono/internal/core"
)

// colorStyles caches one lipgloss style per ANSI 256 color code.
var (
	colorStyles   = make(map[core.Color]lipgloss.Style)
	colorStylesMu sync.Mutex
)

// styleFor returns the style for a cell color. The default color is unstyled.
func styleFor(c core.Color) lipgloss.Style {
	colorStylesMu.Lock()
	defer colorStylesMu.Unlock()

	if style, ok := colorStyles[c]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if c != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	}
	colorStyles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
