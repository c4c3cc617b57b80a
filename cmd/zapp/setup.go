package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-zapp/internal/config"
	"github.com/vovakirdan/word-zapp/internal/dictionary"
	"github.com/vovakirdan/word-zapp/internal/game"
)

// loadSettings resolves the game config from --config and --difficulty,
// then loads the word list from --dict or the config.
func loadSettings() (game.Settings, dictionary.Dictionary, error) {
	cfg, err := config.LoadZapp(flagConfig)
	if err != nil {
		return game.Settings{}, nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return game.Settings{}, nil, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return game.Settings{}, nil, err
	}

	dictPath := cfg.Dictionary.Path
	if flagDict != "" {
		dictPath = flagDict
	}
	dict, err := dictionary.Load(dictPath)
	if err != nil {
		return game.Settings{}, nil, err
	}

	return cfg.Settings(), dict, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when the
// flag is empty. The returned func closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
