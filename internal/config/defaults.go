package config

import (
	_ "embed"

	"github.com/vovakirdan/word-zapp/internal/zapp"
)

//go:embed defaults/zapp.yaml
var defaultZappYAML []byte

// DefaultZappConfig returns the default word zapp configuration.
func DefaultZappConfig() ZappConfig {
	return ZappConfig{
		Letters: LettersConfig{
			Count: zapp.DefaultLetterCount,
		},
		Limits: LimitsConfig{
			WordLimit:     zapp.DefaultWordLimit,
			TimeLimitSecs: int(zapp.DefaultTimeLimit.Seconds()),
			HardCap:       zapp.DefaultHardCap,
		},
		Adversary: AdversaryConfig{
			Enabled:        true,
			BaseIntervalMs: int(zapp.DefaultAdversaryInterval.Milliseconds()),
			JitterMs:       int(zapp.DefaultAdversaryJitter.Milliseconds()),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultZappYAML
}
