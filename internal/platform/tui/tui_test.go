package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resetErr error
	resets   int
	resized  [2]int
	frames   []core.InputFrame
	state    core.GameState
	stats    core.RunStats
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	g.resets++
	g.state = core.GameState{}
	return g.resetErr
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "STUB", core.ColorCyan) }
func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *stubGame) Stats() core.RunStats    { return g.stats }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey("s"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionEat},
		{runeKey("p"), core.ActionPause},
		{runeKey("r"), core.ActionRestart},
		{runeKey("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "MATH", core.ColorCyan)
	s.DrawText(5, 0, "MONO", core.RGB(1, 0, 0))
	s.DrawText(0, 1, "42", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "MATH") || !strings.Contains(lines[0], "MONO") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "42") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestModelMapsKeysIntoFrame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testRuntime(), Options{})
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	next, _ := m.Update(runeKey("w"))
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next, _ = next.Update(TickMsg(time.Now()))

	if len(game.frames) != 1 {
		t.Fatalf("steps = %d, want 1", len(game.frames))
	}
	in := game.frames[0]
	if !in.Has(core.ActionUp) || !in.Has(core.ActionEat) {
		t.Errorf("frame = %v, want Up and Eat", in.Actions)
	}

	// The frame is cleared after each step.
	next.Update(TickMsg(time.Now()))
	if len(game.frames) != 2 || !game.frames[1].Empty() {
		t.Errorf("second frame should be empty, got %v", game.frames[1].Actions)
	}
}

func TestModelIgnoresRestartWhilePlaying(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testRuntime(), Options{})

	next, _ := m.Update(runeKey("r"))
	next.Update(TickMsg(time.Now()))
	if game.frames[0].Has(core.ActionRestart) {
		t.Error("restart forwarded while the game is running")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testRuntime(), Options{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, want [100 30]", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
}

func TestModelRecordsFinishedGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var finished []storage.Run
	game := &stubGame{}
	m := NewModel(game, testRuntime(), Options{
		Store:    store,
		OnFinish: func(r storage.Run) { finished = append(finished, r) },
	})

	game.state = core.GameState{Score: 70, GameOver: true}
	game.stats = core.RunStats{Ticks: 300, Progress: 12, Won: false}

	next, _ := m.Update(TickMsg(time.Now()))
	next, _ = next.Update(TickMsg(time.Now())) // still game over, recorded once

	if len(finished) != 1 {
		t.Fatalf("OnFinish called %d times, want 1", len(finished))
	}
	run := finished[0]
	if run.Score != 70 || run.BlocksEaten != 12 || run.Ticks != 300 || run.Seed != 9 {
		t.Errorf("run = %+v", run)
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("stored runs = %d, want 1", len(runs))
	}
	if high, _ := store.HighScore("stub"); high != 70 {
		t.Errorf("high score = %d, want 70", high)
	}

	// Restart after game over resets the game and allows a new record.
	next, _ = next.Update(runeKey("r"))
	next.Update(TickMsg(time.Now()))
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
}

func TestModelStartFailure(t *testing.T) {
	game := &stubGame{resetErr: errors.New("no display")}
	m := NewModel(game, testRuntime(), Options{})

	if m.Err() == nil {
		t.Fatal("expected start error")
	}
	if !strings.Contains(m.View(), "no display") {
		t.Errorf("view = %q, want error text", m.View())
	}
	if m.Init() != nil {
		t.Error("failed model should not start ticking")
	}

	_, cmd := m.Update(runeKey("x"))
	if cmd == nil {
		t.Error("any key should quit after a start failure")
	}
	if len(game.frames) != 0 {
		t.Error("failed game was stepped")
	}
}

func TestModelViewRendersGame(t *testing.T) {
	m := NewModel(&stubGame{}, testRuntime(), Options{})
	if !strings.Contains(m.View(), "STUB") {
		t.Error("view does not contain the game render")
	}

	next, _ := m.Update(runeKey("?"))
	if !strings.Contains(next.View(), "quit") {
		t.Error("help view missing")
	}
}

func TestScoreTable(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	empty, err := RenderScoreTable(store, "mathmono", ViewTopScores, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(empty, "No games recorded") {
		t.Errorf("empty table = %q", empty)
	}

	store.SaveScore("mathmono", 120)
	store.SaveScore("mathmono", 80)
	store.SaveRun(storage.Run{GameID: "mathmono", Score: 120, BlocksEaten: 30, Seed: 77, Won: true})

	scores, err := RenderScoreTable(store, "mathmono", ViewTopScores, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(scores, "120") || !strings.Contains(scores, "#2") {
		t.Errorf("score table = %q", scores)
	}

	runs, err := RenderScoreTable(store, "mathmono", ViewRecentRuns, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(runs, "won") || !strings.Contains(runs, "77") {
		t.Errorf("runs table = %q", runs)
	}
}

func TestScoreboardSwitchesView(t *testing.T) {
	m := NewScoreboardModel(nil, "mathmono", "Math Mono", 80, 24)
	if m.view != ViewTopScores {
		t.Fatal("scoreboard should start on top scores")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != ViewRecentRuns {
		t.Error("tab should switch to recent runs")
	}
	if !strings.Contains(next.View(), "RECENT RUNS") {
		t.Error("view title not updated")
	}
}

func TestConfigWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mathmono.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("grid:\n  rows: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Clean(got) != w.Path() {
			t.Errorf("event for %q, want %q", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for config write")
	}

	w.Close()
	select {
	case _, ok := <-w.Events:
		for ok {
			_, ok = <-w.Events
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after Close")
	}
}

func TestMenuStartsOnRememberedDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		want       string
	}{
		{"", "normal"},
		{"easy", "easy"},
		{"hard", "hard"},
		{"bogus", "normal"},
	}

	for _, tt := range tests {
		m := NewMenuModel("Math Mono", tt.difficulty, 0, testRuntime())
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		sel := next.(MenuModel).Selected()
		if sel == nil || sel.Choice != MenuPlay || sel.Difficulty != tt.want {
			t.Errorf("difficulty %q: selected %+v, want play %s", tt.difficulty, sel, tt.want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("Math Mono", "hard", 150, testRuntime())
	if !strings.Contains(m.View(), "150") {
		t.Error("menu should show the personal best")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	if sel := next.(MenuModel).Selected(); sel == nil || sel.Choice != MenuScores {
		t.Errorf("selected %+v, want scores", sel)
	}

	// The cursor stops at the last item.
	m = NewMenuModel("Math Mono", "", 0, testRuntime())
	for range 10 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel := next.(MenuModel).Selected(); sel == nil || sel.Choice != MenuQuit {
		t.Errorf("selected %+v, want quit", sel)
	}

	next, _ = NewMenuModel("Math Mono", "", 0, testRuntime()).Update(runeKey("q"))
	if !next.(MenuModel).IsQuitting() || next.(MenuModel).Selected() != nil {
		t.Error("q should quit without a selection")
	}
}
