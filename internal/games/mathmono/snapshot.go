package mathmono

// StateType represents the current session state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StateWon         StateType = "won"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Health     int
	Row        int
	Col        int
	WorldX     float64
	WorldY     float64
	Eaten      int
	Remaining  int
	ValueSum   int // Sum of all block values, identifies the board
	Question   string
	Answer     int
	Recomputes int
	State      StateType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.view.TooSmall:
		state = StatePausedSmall
	case s.won:
		state = StateWon
	case s.gameOver:
		state = StateGameOver
	case s.paused:
		state = StatePaused
	}

	sum := 0
	for _, blk := range s.board.blocks {
		sum += blk.Value
	}

	return Snapshot{
		Tick:       s.tick,
		Score:      s.player.Score,
		Health:     s.player.Health,
		Row:        s.player.Pos.Row,
		Col:        s.player.Pos.Col,
		WorldX:     s.player.World.X,
		WorldY:     s.player.World.Y,
		Eaten:      s.board.EatenCount(),
		Remaining:  s.board.Remaining(),
		ValueSum:   sum,
		Question:   s.question.Text,
		Answer:     s.question.Answer,
		Recomputes: s.sync.Recomputes(),
		State:      state,
	}
}
