package engine

import "time"

// Gravity tracks the fall-timer interval. It only ever shortens during a
// game: every LinesPerTier cumulative lines halve it, down to an optional
// floor. Reset restores the initial interval for a new game.
type Gravity struct {
	initial      time.Duration
	interval     time.Duration
	floor        time.Duration
	linesPerTier int
}

// NewGravity creates a gravity ramp. linesPerTier <= 0 disables the ramp;
// floor <= 0 means no lower bound other than one nanosecond.
func NewGravity(initial time.Duration, linesPerTier int, floor time.Duration) *Gravity {
	if floor <= 0 {
		floor = time.Nanosecond
	}
	if initial < floor {
		initial = floor
	}
	return &Gravity{
		initial:      initial,
		interval:     initial,
		floor:        floor,
		linesPerTier: linesPerTier,
	}
}

// Interval returns the current fall interval.
func (g *Gravity) Interval() time.Duration {
	return g.interval
}

// Tier returns how many times the interval has been halved.
func (g *Gravity) Tier() int {
	tier := 0
	for d := g.initial; d > g.interval; d /= 2 {
		tier++
	}
	return tier
}

// LineCleared reacts to the cumulative line count reported by the session.
// It reports whether the interval changed.
func (g *Gravity) LineCleared(total int) bool {
	if g.linesPerTier <= 0 || total == 0 || total%g.linesPerTier != 0 {
		return false
	}
	next := max(g.interval/2, g.floor)
	if next == g.interval {
		return false
	}
	g.interval = next
	return true
}

// Reset restores the initial interval.
func (g *Gravity) Reset() {
	g.interval = g.initial
}

// Ticks converts the interval into simulation ticks at the given rate,
// never less than one.
func (g *Gravity) Ticks(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	n := int(g.interval * time.Duration(tickRate) / time.Second)
	return max(1, n)
}
