package mathmono

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

const minPanelCols = 10

// Render draws the session into dst. The screen is pre-cleared.
func (s *Session) Render(dst *core.Screen) {
	if s.view.TooSmall {
		s.renderTooSmall(dst)
		return
	}

	dst.DrawRect(s.view.PlayArea(), ' ', core.ColorDefault)
	s.renderBlocks(dst)
	s.renderPlayer(dst)
	panelShown := s.renderQuestionPanel(dst)
	s.renderHUD(dst, panelShown)

	switch {
	case s.gameOver:
		s.renderGameOver(dst)
	case s.paused:
		s.renderOverlay(dst, []string{"PAUSED", "", "P to resume"}, core.ColorYellow)
	}
}

func (s *Session) renderBlocks(dst *core.Screen) {
	for _, blk := range s.board.blocks {
		r := s.view.Rect(blk.World, s.grid.BlockSize)
		if blk.eaten {
			dst.DrawRect(r, '░', core.ColorGray)
		} else {
			dst.DrawRect(r, '█', blk.Color)
		}
		if blk.Label.Visible {
			cx, cy := r.Center()
			x := cx - utf8.RuneCountInString(blk.Label.Text)/2
			dst.DrawText(x, cy, blk.Label.Text, core.ColorBrightWhite)
		}
	}
}

func (s *Session) renderPlayer(dst *core.Screen) {
	r := s.view.Rect(s.player.World, s.grid.BlockSize)
	if r.W >= 4 && r.H >= 3 {
		dst.DrawBox(r, core.ColorYellow)
		return
	}
	_, cy := r.Center()
	dst.SetColored(r.X-1, cy, '[', core.ColorYellow)
	dst.SetColored(r.Right(), cy, ']', core.ColorYellow)
}

// questionRect places the question panel in the margin left of the grid.
func (s *Session) questionRect() (core.Rect, bool) {
	panel := grid.QuestionPanel(s.view.Window, s.layout, s.cfg.Question.UsableMargin)
	r := s.view.Rect(panel.Center, panel.Size)
	return r, r.W >= minPanelCols && r.H >= 3
}

// renderQuestionPanel draws the question in its side panel and reports
// whether it fit.
func (s *Session) renderQuestionPanel(dst *core.Screen) bool {
	if !s.hasQuestion {
		return false
	}
	r, ok := s.questionRect()
	if !ok {
		return false
	}

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorCyan)
	dst.DrawText(r.X+2, r.Y, " Question ", core.ColorCyan)

	lines := wrapWords(s.question.Text, r.W-2)
	for i, line := range lines {
		if i >= r.H-2 {
			break
		}
		dst.DrawText(r.X+1, r.Y+1+i, line, core.ColorBrightWhite)
	}
	return true
}

func (s *Session) renderHUD(dst *core.Screen, panelShown bool) {
	dst.DrawText(1, 0, "MATH MONO", core.ColorCyan)

	x := 12
	score := fmt.Sprintf("Score: %d", s.player.Score)
	dst.DrawText(x, 0, score, core.ColorWhite)
	x += len(score) + 3

	dst.DrawText(x, 0, "Health: ", core.ColorWhite)
	x += len("Health: ")
	hearts := strings.Repeat("♥", s.player.Health) + strings.Repeat("♡", max(s.player.MaxHealth-s.player.Health, 0))
	dst.DrawText(x, 0, hearts, core.ColorRed)
	x += utf8.RuneCountInString(hearts) + 3

	dst.DrawText(x, 0, fmt.Sprintf("Eaten: %d/%d", s.board.EatenCount(), s.board.Len()), core.ColorWhite)

	// Second line: question fallback, eat feedback or controls.
	x = 1
	if s.hasQuestion && !panelShown {
		text := "Q: " + s.question.Text
		dst.DrawText(x, 1, text, core.ColorYellow)
		x += utf8.RuneCountInString(text) + 3
	}
	switch {
	case s.feedbackTicks > 0 && s.lastEat == EatCorrect:
		dst.DrawText(x, 1, fmt.Sprintf("Correct! +%d", s.cfg.Rules.CorrectPoints), core.ColorGreen)
	case s.feedbackTicks > 0 && s.lastEat == EatWrong:
		dst.DrawText(x, 1, fmt.Sprintf("Wrong! -%d health", s.cfg.Rules.Damage), core.ColorRed)
	case panelShown:
		dst.DrawText(x, 1, "WASD/arrows move  Space eat  P pause  Q quit", core.ColorGray)
	}
}

func (s *Session) renderGameOver(dst *core.Screen) {
	if s.won {
		s.renderOverlay(dst, []string{
			"BOARD CLEARED!",
			"",
			fmt.Sprintf("Score: %d", s.player.Score),
			"",
			"R restart  Q quit",
		}, core.ColorGreen)
		return
	}
	s.renderOverlay(dst, []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", s.player.Score),
		fmt.Sprintf("Eaten: %d/%d", s.board.EatenCount(), s.board.Len()),
		"",
		"R restart  Q quit",
	}, core.ColorRed)
}

// renderOverlay draws a centered box with the given lines.
func (s *Session) renderOverlay(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	w, h := width+4, len(lines)+2
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, line := range lines {
		dst.DrawTextCentered(r.Y+1+i, line, c)
	}
}

func (s *Session) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Enlarge the terminal to play", core.ColorGray)
}

// wrapWords breaks text into lines of at most width runes, splitting on
// spaces. Words longer than width are cut.
func wrapWords(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = cur[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append(cur[:0], w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
