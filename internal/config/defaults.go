package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default configuration: a 320x400 board of
// 20-unit cells and a one second fall interval that halves every five lines.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:    320,
			Height:   400,
			CellSize: 20,
		},
		Gravity: GravityConfig{
			Enabled:           true,
			InitialIntervalMs: 1000,
			LinesPerTier:      5,
			MinIntervalMs:     0,
		},
	}
}
