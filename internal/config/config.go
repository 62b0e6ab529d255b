// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

// BlockfallConfig contains all tunables for the game. Board dimensions are
// compile-time constants in the game package and are deliberately absent.
type BlockfallConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Leveling LevelingConfig `yaml:"leveling"`
}

// TimingConfig defines the gravity step and the wrapping-clock parameters.
type TimingConfig struct {
	InitialStepMS  int     `yaml:"initial_step_ms"`
	SpeedFactor    float64 `yaml:"speed_factor"` // step interval multiplier per level-up
	ClockModulusMS int     `yaml:"clock_modulus_ms"`
	StaleLimitMS   int     `yaml:"stale_limit_ms"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	PerPiece int `yaml:"per_piece"`
	PerRow   int `yaml:"per_row"`
}

// LevelingConfig defines level progression. LinesPerLevel 0 disables
// progression entirely.
type LevelingConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	MaxLevel      int `yaml:"max_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Leveling.LinesPerLevel = 3
		cfg.Leveling.MaxLevel = 8
	case DifficultyNormal:
		cfg.Leveling.LinesPerLevel = 1
		cfg.Leveling.MaxLevel = 9
	case DifficultyHard:
		cfg.Timing.InitialStepMS = 800
		cfg.Leveling.LinesPerLevel = 1
		cfg.Leveling.MaxLevel = 10
	case DifficultyFixed:
		cfg.Leveling.LinesPerLevel = 0
	}
}
