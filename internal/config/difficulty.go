package config

// presetIntervals holds the starting fall interval and floor in ms.
var presetIntervals = map[DifficultyPreset][2]int{
	DifficultyEasy:   {1500, 200},
	DifficultyNormal: {1000, 100},
	DifficultyHard:   {500, 50},
}

// InitialIntervalForPreset returns the starting fall interval in ms for a
// preset, or 0 when the preset does not set one.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	return presetIntervals[preset][0]
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured interval and turns the speed-up off.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Gravity.Enabled = false
		return
	}

	iv, ok := presetIntervals[preset]
	if !ok {
		return
	}
	cfg.Gravity.Enabled = true
	cfg.Gravity.InitialIntervalMs = iv[0]
	cfg.Gravity.MinIntervalMs = iv[1]
	if cfg.Gravity.LinesPerTier <= 0 {
		cfg.Gravity.LinesPerTier = 5
	}
}
