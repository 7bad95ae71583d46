// Package mathmono implements Math Mono: a player marker moves over a grid
// of numbered blocks and eats the one that answers the current arithmetic
// question. Game logic is engine-free; the platform drives it through
// Session.Tick and Session.Render.
package mathmono

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathmono/internal/config"
	"github.com/vovakirdan/mathmono/internal/core"
	"github.com/vovakirdan/mathmono/internal/grid"
)

// ErrNoDisplay is returned when the display size is unknown at startup.
var ErrNoDisplay = errors.New("mathmono: display size unavailable")

const defaultTickRate = 60

// EatOutcome describes the last eat action.
type EatOutcome int

const (
	EatNone EatOutcome = iota
	EatCorrect
	EatWrong
)

// Options configures a new Session.
type Options struct {
	Config  config.MathMonoConfig
	Runtime core.RuntimeConfig
	Values  ValueSource // Defaults to NewValueSource(Runtime.Seed)
	Logger  *log.Logger // Defaults to a discarding logger
}

// Session is one running game. It is owned by a single goroutine.
type Session struct {
	cfg     config.MathMonoConfig
	grid    grid.Config
	runtime core.RuntimeConfig
	values  ValueSource
	logger  *log.Logger

	layout   grid.Layout
	view     Projection
	board    *Board
	player   Player
	sync     *Synchronizer
	resolver *Resolver

	question    Question
	hasQuestion bool

	tick          uint64
	paused        bool
	gameOver      bool
	won           bool
	lastEat       EatOutcome
	feedbackTicks int
}

// NewSession validates opts and spawns the board and the player.
// A missing display aborts with ErrNoDisplay before any block exists.
func NewSession(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := opts.Config.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return nil, err
	}
	if !opts.Runtime.HasDisplay() {
		logger.Error("cannot spawn grid",
			"err", ErrNoDisplay,
			"width", opts.Runtime.ScreenW,
			"height", opts.Runtime.ScreenH)
		return nil, ErrNoDisplay
	}

	values := opts.Values
	if values == nil {
		values = NewValueSource(opts.Runtime.Seed)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaultTickRate
	}

	s := &Session{
		cfg:     opts.Config,
		grid:    opts.Config.Grid,
		runtime: opts.Runtime,
		values:  values,
		logger:  logger,
	}
	if err := s.spawn(); err != nil {
		return nil, err
	}
	return s, nil
}

// spawn builds a fresh board and player from the session config.
func (s *Session) spawn() error {
	s.layout = grid.ComputeLayout(s.grid)
	s.view = NewProjection(s.runtime.ScreenW, s.runtime.ScreenH, s.layout, s.grid.BlockSize)

	board := NewBoard(s.grid.Cells())
	for _, pos := range grid.All(s.grid) {
		value := valueIn(s.values, s.cfg.Rules.MinValue, s.cfg.Rules.MaxValue)
		blk := &Block{
			Pos:   pos,
			World: s.layout.PositionCenter(s.grid, pos),
			Value: value,
			Label: Label{Text: strconv.Itoa(value), Visible: true},
			Color: SpawnColor(pos),
		}
		if err := board.Add(blk); err != nil {
			s.logger.Error("spawn failed", "err", err)
			return err
		}
	}
	s.board = board
	s.resolver = NewResolver(board)

	s.player = Player{
		Pos:       grid.Center(s.grid),
		Health:    s.cfg.Rules.StartHealth,
		MaxHealth: s.cfg.Rules.StartHealth,
	}
	s.sync = NewSynchronizer(s.grid, s.layout)
	s.sync.Sync(&s.player)

	s.question, s.hasQuestion = pickQuestion(s.values, board, s.cfg.Question.Operators)

	s.tick = 0
	s.paused = false
	s.gameOver = false
	s.won = false
	s.lastEat = EatNone
	s.feedbackTicks = 0

	s.logger.Info("grid spawned",
		"rows", s.grid.Rows,
		"cols", s.grid.Cols,
		"blocks", board.Len(),
		"total", s.layout.TotalSize,
		"bottom_left", s.layout.BottomLeft)
	s.logger.Debug("player spawned", "pos", s.player.Pos, "world", s.player.World)
	return nil
}

// Restart spawns a new board with the next values from the source.
func (s *Session) Restart() {
	if err := s.spawn(); err != nil {
		// The config was validated in NewSession; keep the old board.
		s.logger.Error("restart failed", "err", err)
	}
}

// Resize recomputes the screen projection. Board state is preserved.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.runtime.ScreenW = width
	s.runtime.ScreenH = height
	s.view = NewProjection(width, height, s.layout, s.grid.BlockSize)
}

// Tick advances the session by one frame. Stages run in a fixed order:
// pause and restart, move, sync, eat, labels, rules, palette.
func (s *Session) Tick(in core.InputFrame) {
	if s.gameOver {
		if in.Has(core.ActionRestart) {
			s.Restart()
		}
		return
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused || s.view.TooSmall {
		return
	}
	s.tick++

	if next, moved := MovePlayer(s.player.Pos, in, s.grid); moved {
		s.player.Pos = next
	}
	s.sync.Sync(&s.player)

	eaten, ok := s.resolver.Resolve(s.player.Pos, in)
	s.resolver.UpdateLabels()

	if s.feedbackTicks > 0 {
		s.feedbackTicks--
	}
	if ok {
		s.applyEat(eaten)
	}

	s.animate()
}

// applyEat scores an eaten block against the current question.
func (s *Session) applyEat(blk *Block) {
	rules := s.cfg.Rules
	if s.hasQuestion && blk.Value == s.question.Answer {
		s.player.Score += rules.CorrectPoints
		s.lastEat = EatCorrect
		s.logger.Debug("correct answer", "pos", blk.Pos, "value", blk.Value, "score", s.player.Score)
	} else {
		s.player.Health = max(0, s.player.Health-rules.Damage)
		s.lastEat = EatWrong
		s.logger.Debug("wrong answer", "pos", blk.Pos, "value", blk.Value, "want", s.question.Answer, "health", s.player.Health)
	}
	s.feedbackTicks = s.runtime.TickRate

	switch {
	case !s.player.Alive():
		s.gameOver = true
		s.logger.Info("game over", "score", s.player.Score, "eaten", s.board.EatenCount())
	case s.board.Remaining() == 0:
		s.gameOver = true
		s.won = true
		s.hasQuestion = false
		s.logger.Info("board cleared", "score", s.player.Score, "ticks", s.tick)
	case s.lastEat == EatCorrect:
		s.question, s.hasQuestion = pickQuestion(s.values, s.board, s.cfg.Question.Operators)
	}
}

// animate recolors uneaten blocks from the elapsed time and their values.
func (s *Session) animate() {
	if !s.cfg.Palette.Animate {
		return
	}
	t := s.Elapsed() * s.cfg.Palette.Speed
	for _, blk := range s.board.blocks {
		if blk.eaten {
			continue
		}
		blk.Color = AnimatedColor(t, blk.Value, s.cfg.Palette.Blue)
	}
}

// Elapsed returns simulated seconds since spawn.
func (s *Session) Elapsed() float64 {
	return float64(s.tick) / float64(s.runtime.TickRate)
}

// Blocks returns the board's blocks in row-major order.
// Callers must treat them as read-only.
func (s *Session) Blocks() []*Block {
	return s.board.Blocks()
}

// Board returns the session board.
func (s *Session) Board() *Board {
	return s.board
}

// Player returns a copy of the player state.
func (s *Session) Player() Player {
	return s.player
}

// Question returns the current question, if one is active.
func (s *Session) Question() (Question, bool) {
	return s.question, s.hasQuestion
}

// Layout returns the grid layout the session was spawned with.
func (s *Session) Layout() grid.Layout {
	return s.layout
}

// Background returns the visible world area, sized from the display.
func (s *Session) Background() grid.Vec2 {
	return s.view.Window
}

// Synchronizer exposes the player synchronizer.
func (s *Session) Synchronizer() *Synchronizer {
	return s.sync
}

// LastEat returns the outcome of the most recent eat.
func (s *Session) LastEat() EatOutcome {
	return s.lastEat
}

// State returns the platform-facing game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.player.Score,
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
}

// Won reports whether every block was eaten.
func (s *Session) Won() bool {
	return s.won
}

// Ticks returns simulated ticks since spawn.
func (s *Session) Ticks() uint64 {
	return s.tick
}
