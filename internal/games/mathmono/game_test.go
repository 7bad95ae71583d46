package mathmono

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/registry"
)

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Math Mono" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("game should implement registry.Resizer")
	}
	if _, ok := g.(registry.StatsReporter); !ok {
		t.Error("game should implement registry.StatsReporter")
	}
}

func TestGameResetWithoutDisplay(t *testing.T) {
	g := NewWithConfig(testConfig(7, 7), nil)

	err := g.Reset(core.RuntimeConfig{Seed: 1})
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("err = %v, want ErrNoDisplay", err)
	}
	if g.Session() != nil {
		t.Error("session created without display")
	}

	// A game that failed to start is inert.
	res := g.Step(frame(core.ActionEat))
	if res.State != (core.GameState{}) {
		t.Errorf("state = %+v, want zero", res.State)
	}
	screen := core.NewScreen(40, 5)
	g.Render(screen)
	if g.Stats() != (core.RunStats{}) {
		t.Error("stats should be zero")
	}
}

func TestGameStepAndStats(t *testing.T) {
	g := NewWithConfig(testConfig(7, 7), nil)
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatal(err)
	}

	setAnswer(g.Session(), g.Session().Board().At(g.Session().Player().Pos).Value)
	res := g.Step(frame(core.ActionEat))
	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}

	g.Step(frame(core.ActionUp))
	stats := g.Stats()
	if stats.Ticks != 2 || stats.Progress != 1 || stats.Won {
		t.Errorf("stats = %+v, want 2 ticks, 1 eaten, not won", stats)
	}

	before := g.Snapshot()
	g.Resize(160, 50)
	if g.Snapshot() != before {
		t.Error("resize reset the game")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 4242, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := NewWithConfig(testConfig(7, 7), nil)
	g2 := NewWithConfig(testConfig(7, 7), nil)
	if err := g1.Reset(cfg); err != nil {
		t.Fatal(err)
	}
	if err := g2.Reset(cfg); err != nil {
		t.Fatal(err)
	}

	input := core.NewInputFrame()
	for i := range 120 {
		input.Clear()
		if i%10 == 0 {
			input.Set(core.ActionRight)
		}
		if i%15 == 0 {
			input.Set(core.ActionEat)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	cfg, err := LoadConfig("", "hard")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Rows != 9 || cfg.Rules.StartHealth != 3 {
		t.Errorf("hard preset not applied: %dx%d, health %d", cfg.Grid.Rows, cfg.Grid.Cols, cfg.Rules.StartHealth)
	}

	if _, err := LoadConfig("", "impossible"); err == nil {
		t.Error("unknown preset should fail")
	}
}
