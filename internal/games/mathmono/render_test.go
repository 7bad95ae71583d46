package mathmono

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

func renderSession(s *Session, w, h int) string {
	screen := core.NewScreen(w, h)
	s.Render(screen)
	return screen.String()
}

func newSizedSession(t *testing.T, w, h int) *Session {
	t.Helper()
	s, err := NewSession(Options{
		Config:  testConfig(7, 7),
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProjectionFitsScreen(t *testing.T) {
	sizes := [][2]int{{80, 24}, {120, 40}, {200, 50}, {60, 60}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		s := newSizedSession(t, w, h)
		if s.view.TooSmall {
			t.Fatalf("%dx%d reported too small", w, h)
		}

		var prev core.Rect
		for i, blk := range s.Blocks() {
			r := s.view.Rect(blk.World, s.grid.BlockSize)
			if r.X < 0 || r.Right() > w || r.Y < hudRows || r.Bottom() > h {
				t.Errorf("%dx%d: block %s rect %+v outside play area", w, h, blk.Pos, r)
			}
			if r.W <= 0 || r.H <= 0 {
				t.Errorf("%dx%d: block %s has empty rect", w, h, blk.Pos)
			}
			// Same row, next column: rects must not overlap.
			if i%7 != 0 && prev.Right() > r.X {
				t.Errorf("%dx%d: block %s overlaps its left neighbor", w, h, blk.Pos)
			}
			prev = r
		}
	}
}

func TestProjectionYAxisPointsUp(t *testing.T) {
	s := newSizedSession(t, 80, 24)
	bottom := s.view.Rect(s.Board().At(grid.P(0, 0)).World, s.grid.BlockSize)
	top := s.view.Rect(s.Board().At(grid.P(6, 0)).World, s.grid.BlockSize)
	if top.Y >= bottom.Y {
		t.Errorf("row 6 drawn at y=%d, below row 0 at y=%d", top.Y, bottom.Y)
	}
}

func TestRenderPlaying(t *testing.T) {
	s := newSizedSession(t, 80, 24)
	out := renderSession(s, 80, 24)

	for _, want := range []string{"MATH MONO", "Score: 0", "Eaten: 0/49", "Question", "What is"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "♥♥♥♥♥") {
		t.Error("render missing health")
	}
}

func TestRenderQuestionFallsBackToHUD(t *testing.T) {
	s := newSizedSession(t, 50, 24)
	if _, ok := s.questionRect(); ok {
		t.Fatal("panel should not fit at 50 columns")
	}
	out := renderSession(s, 50, 24)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "Q: What is") {
		t.Errorf("HUD line = %q, want question fallback", lines[1])
	}
}

func TestRenderHidesEatenLabel(t *testing.T) {
	s := newSizedSession(t, 80, 24)
	blk := s.Board().At(s.Player().Pos)
	setAnswer(s, blk.Value)
	s.Tick(frame(core.ActionEat))

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	r := s.view.Rect(blk.World, s.grid.BlockSize)
	cx, cy := r.Center()
	if got := screen.Get(cx, cy); got != '░' {
		t.Errorf("eaten block center = %q, want '░'", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	paused := newSizedSession(t, 80, 24)
	paused.Tick(frame(core.ActionPause))
	if out := renderSession(paused, 80, 24); !strings.Contains(out, "PAUSED") {
		t.Error("missing pause overlay")
	}

	cfg := testConfig(7, 7)
	cfg.Rules.StartHealth = 1
	lost, err := NewSession(Options{Config: cfg, Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}})
	if err != nil {
		t.Fatal(err)
	}
	setAnswer(lost, -1)
	lost.Tick(frame(core.ActionEat))
	if out := renderSession(lost, 80, 24); !strings.Contains(out, "GAME OVER") {
		t.Error("missing game over overlay")
	}

	won, err := NewSession(Options{Config: testConfig(1, 1), Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}})
	if err != nil {
		t.Fatal(err)
	}
	won.Tick(frame(core.ActionEat))
	if out := renderSession(won, 80, 24); !strings.Contains(out, "BOARD CLEARED!") {
		t.Error("missing win overlay")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newSizedSession(t, 20, 6)
	if out := renderSession(s, 20, 6); !strings.Contains(out, "Window too small") {
		t.Errorf("missing too small message:\n%s", out)
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"What is 10 + 10 ?", 8, []string{"What is", "10 + 10", "?"}},
		{"What is 10 + 10 ?", 40, []string{"What is 10 + 10 ?"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"anything", 0, nil},
		{"", 10, nil},
	}
	for _, tt := range tests {
		if got := wrapWords(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapWords(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
