package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It matches defaults/runner.yaml and is the fallback if the embed is unusable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: PlayfieldConfig{
			ColumnPx:   10,
			RowPx:      25,
			WidthRatio: 3,
			MinColumns: 30,
		},
		Objects: ObjectsConfig{
			StartY: 60,
			Speed:  5,
		},
		Spawn: SpawnConfig{
			Period: 100,
		},
		Player: PlayerConfig{
			Sprite:          "assets/img/players/runner.png",
			BottomOffset:    125,
			LaneSwitchSpeed: 0,
		},
		HUD: HUDConfig{
			Hint: "← left | ↑ middle | → right",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
