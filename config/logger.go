package config

import (
	"fmt"
	"log/slog"
)

// Logger holds the logging settings.
type Logger struct {
	Level string `yaml:"level"`
}

var LoggerConfig = new(Logger)

// SlogLevel parses Level; an empty level means info.
func (l *Logger) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}
