// Package config provides YAML-based game configuration loading and
// difficulty presets for the blocks game.
package config

import (
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
}

// MinBoardCells is the smallest board side, in cells, the engine accepts.
const MinBoardCells = 4

// BoardConfig defines the playfield in layout units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Board is Width/CellSize columns by Height/CellSize rows
}

// GravityConfig defines the fall timer and its speed-up ramp.
type GravityConfig struct {
	Enabled           bool `yaml:"enabled"`             // false keeps the interval fixed
	InitialIntervalMs int  `yaml:"initial_interval_ms"` // Delay between automatic drops
	LinesPerTier      int  `yaml:"lines_per_tier"`      // Interval halves every N cleared lines
	MinIntervalMs     int  `yaml:"min_interval_ms"`     // 0 means no floor
}

// InitialInterval returns the starting fall interval.
func (g GravityConfig) InitialInterval() time.Duration {
	return time.Duration(g.InitialIntervalMs) * time.Millisecond
}

// MinInterval returns the fall interval floor.
func (g GravityConfig) MinInterval() time.Duration {
	return time.Duration(g.MinIntervalMs) * time.Millisecond
}

// Tier returns the lines-per-tier value, or 0 when the ramp is off.
func (g GravityConfig) Tier() int {
	if !g.Enabled {
		return 0
	}
	return g.LinesPerTier
}

// Validate checks that the configuration describes a playable board.
func (c BlocksConfig) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("config: board.cell_size must be positive, got %d", b.CellSize)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("config: board size must be positive, got %dx%d", b.Width, b.Height)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("config: board %dx%d is not a multiple of cell_size %d", b.Width, b.Height, b.CellSize)
	}
	// Every spawn layout needs four columns and the bar is four rows tall.
	if cols, rows := b.Width/b.CellSize, b.Height/b.CellSize; cols < MinBoardCells || rows < MinBoardCells {
		return fmt.Errorf("config: board must be at least %dx%d cells, got %dx%d", MinBoardCells, MinBoardCells, cols, rows)
	}

	g := c.Gravity
	if g.InitialIntervalMs <= 0 {
		return fmt.Errorf("config: gravity.initial_interval_ms must be positive, got %d", g.InitialIntervalMs)
	}
	if g.MinIntervalMs < 0 || g.MinIntervalMs > g.InitialIntervalMs {
		return fmt.Errorf("config: gravity.min_interval_ms must be in [0, %d], got %d", g.InitialIntervalMs, g.MinIntervalMs)
	}
	if g.Enabled && g.LinesPerTier <= 0 {
		return fmt.Errorf("config: gravity.lines_per_tier must be positive, got %d", g.LinesPerTier)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value to a preset. The empty string means no
// preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
