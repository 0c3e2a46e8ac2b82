package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	loadconfig "github.com/bitxx/load-config"
	"github.com/bitxx/load-config/source"

	"github.com/luca-patrignani/powchain/ledger"
	"github.com/luca-patrignani/powchain/pow"
)

// Config is the shape of the settings file. Loading it fills LedgerConfig
// and LoggerConfig in place.
type Config struct {
	Ledger    *Ledger `yaml:"ledger"`
	Logger    *Logger `yaml:"logger"`
	callbacks []func()
}

// Init runs the registered callbacks after the first load.
func (c *Config) Init() {
	c.notify()
	slog.Debug("settings loaded", "ledger", c.Ledger, "logger", c.Logger)
}

// OnChange runs the registered callbacks after the file is reloaded.
func (c *Config) OnChange() {
	c.notify()
	slog.Info("settings reloaded", "ledger", c.Ledger, "logger", c.Logger)
}

func (c *Config) notify() {
	for _, f := range c.callbacks {
		f()
	}
}

// Setup overlays the settings file on LedgerConfig and LoggerConfig. Values
// the file does not set, or every value when it cannot be loaded, keep what
// was there before.
func Setup(s source.Source, fs ...func()) {
	cfg := &Config{
		Ledger:    LedgerConfig,
		Logger:    LoggerConfig,
		callbacks: fs,
	}
	var err error
	loadconfig.DefaultConfig, err = loadconfig.NewConfig(
		loadconfig.WithSource(s),
		loadconfig.WithEntity(cfg),
	)
	if err != nil {
		slog.Warn("cannot load settings file, keeping defaults", "error", err)
		return
	}
	cfg.Init()
}

// Validate rejects settings the ledger could never work with.
func Validate() error {
	var errs []error
	if LedgerConfig.Difficulty > ledger.MaxDifficulty {
		errs = append(errs, fmt.Errorf("difficulty %d: %w", LedgerConfig.Difficulty, ledger.ErrDifficultyRange))
	}
	if math.IsNaN(LedgerConfig.Reward) || math.IsInf(LedgerConfig.Reward, 0) {
		errs = append(errs, errors.New("reward must be a finite number"))
	}
	if _, ok := pow.PredicateByName(LedgerConfig.Predicate); !ok {
		errs = append(errs, fmt.Errorf("unknown predicate %q", LedgerConfig.Predicate))
	}
	if _, err := LoggerConfig.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
