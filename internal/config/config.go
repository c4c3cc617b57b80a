// Package config provides YAML-based game configuration loading and
// difficulty presets for word zapp.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/word-zapp/internal/game"
)

// ZappConfig contains all configuration for a game of word zapp.
type ZappConfig struct {
	Letters    LettersConfig    `yaml:"letters"`
	Limits     LimitsConfig     `yaml:"limits"`
	Adversary  AdversaryConfig  `yaml:"adversary"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// LettersConfig defines the letter deal.
type LettersConfig struct {
	Count int `yaml:"count"`
}

// LimitsConfig defines the end conditions.
type LimitsConfig struct {
	WordLimit     int `yaml:"word_limit"`
	TimeLimitSecs int `yaml:"time_limit_secs"`
	HardCap       int `yaml:"hard_cap"`
}

// AdversaryConfig defines the zapper's pacing.
type AdversaryConfig struct {
	Enabled        bool `yaml:"enabled"`
	BaseIntervalMs int  `yaml:"base_interval_ms"` // Recurring interval
	JitterMs       int  `yaml:"jitter_ms"`        // Extra random delay per firing
}

// DictionaryConfig points at an external word list.
type DictionaryConfig struct {
	Path string `yaml:"path"` // Empty means the embedded list
}

// Validate checks that the config describes a playable game.
func (c ZappConfig) Validate() error {
	var errs []error

	if c.Letters.Count < 2 || c.Letters.Count > 26 {
		errs = append(errs, fmt.Errorf("letters.count must be between 2 and 26, got %d", c.Letters.Count))
	}
	if c.Limits.WordLimit <= 0 {
		errs = append(errs, fmt.Errorf("limits.word_limit must be positive, got %d", c.Limits.WordLimit))
	}
	if c.Limits.TimeLimitSecs <= 0 {
		errs = append(errs, fmt.Errorf("limits.time_limit_secs must be positive, got %d", c.Limits.TimeLimitSecs))
	}
	if c.Limits.HardCap < 0 {
		errs = append(errs, fmt.Errorf("limits.hard_cap must not be negative, got %d", c.Limits.HardCap))
	}
	if c.Adversary.Enabled && c.Adversary.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("adversary.base_interval_ms must be positive, got %d", c.Adversary.BaseIntervalMs))
	}
	if c.Adversary.JitterMs < 0 {
		errs = append(errs, fmt.Errorf("adversary.jitter_ms must not be negative, got %d", c.Adversary.JitterMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Settings converts the config to game settings.
func (c ZappConfig) Settings() game.Settings {
	return game.Settings{
		LetterCount:       c.Letters.Count,
		WordLimit:         c.Limits.WordLimit,
		TimeLimit:         time.Duration(c.Limits.TimeLimitSecs) * time.Second,
		HardCap:           c.Limits.HardCap,
		AdversaryEnabled:  c.Adversary.Enabled,
		AdversaryInterval: time.Duration(c.Adversary.BaseIntervalMs) * time.Millisecond,
		AdversaryJitter:   time.Duration(c.Adversary.JitterMs) * time.Millisecond,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the zapper pacing for a difficulty preset.
// Fixed turns the zapper off; normal leaves the config untouched.
func ApplyPreset(cfg *ZappConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Adversary.Enabled = true
		cfg.Adversary.BaseIntervalMs = 20000
		cfg.Adversary.JitterMs = 15000
	case DifficultyHard:
		cfg.Adversary.Enabled = true
		cfg.Adversary.BaseIntervalMs = 5000
		cfg.Adversary.JitterMs = 8000
	case DifficultyFixed:
		cfg.Adversary.Enabled = false
	}
}
