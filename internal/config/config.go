// Package config provides YAML-based configuration for the runner game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RunnerConfig contains all configuration for the lane runner.
type RunnerConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Player    PlayerConfig    `yaml:"player"`
	HUD       HUDConfig       `yaml:"hud"`
}

// PlayfieldConfig maps the host display onto playfield pixels.
type PlayfieldConfig struct {
	ColumnPx   int `yaml:"column_px"`   // Pixels per terminal column
	RowPx      int `yaml:"row_px"`      // Pixels per terminal row
	WidthRatio int `yaml:"width_ratio"` // Display columns divided by this give playfield columns
	MinColumns int `yaml:"min_columns"` // Lower bound on playfield columns
}

// ObjectsConfig defines how scoring objects fall.
type ObjectsConfig struct {
	StartY int `yaml:"start_y"` // Top edge at spawn
	Speed  int `yaml:"speed"`   // Pixels per frame
}

// SpawnConfig defines the spawn cadence.
type SpawnConfig struct {
	Period int `yaml:"period"` // Frames between spawns
}

// PlayerConfig defines the default lane player.
type PlayerConfig struct {
	Sprite          string `yaml:"sprite"`
	BottomOffset    int    `yaml:"bottom_offset"`     // Player top edge sits this far above the bottom
	LaneSwitchSpeed int    `yaml:"lane_switch_speed"` // Pixels per frame, 0 = snap
}

// HUDConfig defines the on-field text.
type HUDConfig struct {
	Hint string `yaml:"hint"`
}

// Validate reports the first invalid field.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		name string
		val  int
		min  int
	}{
		{"playfield.column_px", c.Playfield.ColumnPx, 1},
		{"playfield.row_px", c.Playfield.RowPx, 1},
		{"playfield.width_ratio", c.Playfield.WidthRatio, 1},
		{"playfield.min_columns", c.Playfield.MinColumns, 3},
		{"objects.start_y", c.Objects.StartY, 0},
		{"objects.speed", c.Objects.Speed, 1},
		{"spawn.period", c.Spawn.Period, 1},
		{"player.bottom_offset", c.Player.BottomOffset, 1},
		{"player.lane_switch_speed", c.Player.LaneSwitchSpeed, 0},
	}
	for _, ch := range checks {
		if ch.val < ch.min {
			return fmt.Errorf("config: %w: %s must be >= %d, got %d", ErrInvalid, ch.name, ch.min, ch.val)
		}
	}
	if c.Player.Sprite == "" {
		return fmt.Errorf("config: %w: player.sprite is empty", ErrInvalid)
	}
	return nil
}
