package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default game configuration. The values
// mirror the classic terminal version: a 1 s initial gravity step that
// shrinks to three quarters on every level-up, one point per piece and
// twenty per cleared row.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Timing: TimingConfig{
			InitialStepMS:  1000,
			SpeedFactor:    0.75,
			ClockModulusMS: 10000,
			StaleLimitMS:   1500,
		},
		Scoring: ScoringConfig{
			PerPiece: 1,
			PerRow:   20,
		},
		Leveling: LevelingConfig{
			LinesPerLevel: 1,
			MaxLevel:      9,
		},
	}
}
