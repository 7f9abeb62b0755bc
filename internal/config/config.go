// Package config provides YAML-based configuration loading for the board,
// narration and animation timings.
package config

import "time"

// Config is the whole configuration file.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Narration NarrationConfig `yaml:"narration"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig describes the grid and its special spaces.
type BoardConfig struct {
	Rows              int           `yaml:"rows"`
	Columns           int           `yaml:"columns"`
	Verses            []VerseConfig `yaml:"verses"`
	Ladders           []RemapConfig `yaml:"ladders"`
	Snakes            []RemapConfig `yaml:"snakes"`
	CollectAfterRemap bool          `yaml:"collect_after_remap"`
}

// VerseConfig places a verse on a space.
type VerseConfig struct {
	Space int    `yaml:"space"`
	Text  string `yaml:"text"`
}

// RemapConfig is a snake or ladder.
type RemapConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// NarrationConfig selects how verses are spoken.
type NarrationConfig struct {
	Locale string `yaml:"locale"`
	Muted  bool   `yaml:"muted"`
	// Command is an external speech program. Args may use {locale} and {text};
	// without {text} the line is written to the program's stdin.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// AnimationConfig holds the front end's timings.
type AnimationConfig struct {
	StepDelay           time.Duration `yaml:"step_delay"`
	SettleDelay         time.Duration `yaml:"settle_delay"`
	RollDuration        time.Duration `yaml:"roll_duration"`
	RollInterval        time.Duration `yaml:"roll_interval"`
	DetailDuration      time.Duration `yaml:"detail_duration"`
	EmptyDetailDuration time.Duration `yaml:"empty_detail_duration"`
}
