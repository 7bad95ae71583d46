package mathmono

import (
	"testing"

	"github.com/vovakirdan/mathmono/internal/config"
	"github.com/vovakirdan/mathmono/internal/core"
)

func testConfig(rows, cols int) config.MathMonoConfig {
	cfg := config.DefaultMathMonoConfig()
	cfg.Grid.Rows = rows
	cfg.Grid.Cols = cols
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: 7}
}

func newTestSession(t *testing.T, cfg config.MathMonoConfig) *Session {
	t.Helper()
	s, err := NewSession(Options{Config: cfg, Runtime: testRuntime()})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// setAnswer forces the current question to the given answer.
func setAnswer(s *Session, answer int) {
	s.question = Question{Text: "What is ?", Answer: answer}
	s.hasQuestion = true
}

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}
