package main

import (
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/powchain/config"
)

// newLogger returns a slog logger printing through pterm at the configured level.
func newLogger(cfg *config.Logger) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	plogger := pterm.DefaultLogger.WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(plogger)), nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level < slog.LevelDebug:
		return pterm.LogLevelTrace
	case level < slog.LevelInfo:
		return pterm.LogLevelDebug
	case level < slog.LevelWarn:
		return pterm.LogLevelInfo
	case level < slog.LevelError:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
