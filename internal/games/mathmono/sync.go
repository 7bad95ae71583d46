package mathmono

import "github.com/vovakirdan/mathmono/internal/grid"

// Synchronizer keeps the player's world position on the center of its block.
type Synchronizer struct {
	cfg    grid.Config
	layout grid.Layout

	last       grid.Position
	synced     bool
	recomputes int
}

// NewSynchronizer binds a synchronizer to one grid config and its layout.
func NewSynchronizer(cfg grid.Config, layout grid.Layout) *Synchronizer {
	return &Synchronizer{cfg: cfg, layout: layout}
}

// Sync recomputes p.World when p.Pos differs from the last synchronized
// position. It returns false without touching p otherwise.
func (s *Synchronizer) Sync(p *Player) bool {
	if s.synced && p.Pos == s.last {
		return false
	}
	p.World = s.layout.PositionCenter(s.cfg, p.Pos)
	s.last = p.Pos
	s.synced = true
	s.recomputes++
	return true
}

// Recomputes returns how many times Sync updated a world position.
func (s *Synchronizer) Recomputes() int {
	return s.recomputes
}
