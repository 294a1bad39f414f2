package blocks

import "github.com/vovakirdan/tui-blocks/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	State      string // "active", "paused" or "over"
	Lines      int
	Shape      string // active piece, empty when over
	Rotation   int
	Cells      [4]engine.Coord
	Settled    int
	IntervalMs int64
	Tier       int
	Board      string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		State:      g.session.State().String(),
		Lines:      g.session.Lines(),
		Settled:    g.session.Board().Len(),
		IntervalMs: g.gravity.Interval().Milliseconds(),
		Tier:       g.gravity.Tier(),
	}

	p := g.session.Current()
	if p != nil {
		s.Shape = p.Shape().String()
		s.Rotation = p.State()
		s.Cells = p.Cells()
	}
	s.Board = g.session.Board().Render(p)
	return s
}
