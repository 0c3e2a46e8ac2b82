package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luca-patrignani/powchain/config"
)

func resetSettings(t *testing.T) {
	t.Helper()
	*config.LedgerConfig = config.Ledger{}
	*config.LoggerConfig = config.Logger{}
	configPath = ""
	t.Cleanup(func() { configPath = "" })
}

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	flags := StartCmd.PersistentFlags()
	f := flags.Lookup(name)
	def := f.DefValue
	if err := flags.Set(name, value); err != nil {
		t.Fatalf("failed to set flag %s: %v", name, err)
	}
	t.Cleanup(func() {
		_ = flags.Set(name, def)
		f.Changed = false
	})
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestStartIsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "start" {
			return
		}
	}
	t.Fatal("start command is not registered on the root command")
}

func TestRootHelp(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if !strings.Contains(out.String(), "start") {
		t.Fatalf("help does not list the start command:\n%s", out.String())
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetSettings(t)
	if err := loadSettings(StartCmd); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if config.LedgerConfig.Difficulty != 2 || config.LedgerConfig.Reward != 100 {
		t.Fatalf("flag defaults not applied: %+v", *config.LedgerConfig)
	}
	if config.LedgerConfig.Predicate != "zero-prefix" || config.LoggerConfig.Level != "info" {
		t.Fatalf("flag defaults not applied: %+v %+v", *config.LedgerConfig, *config.LoggerConfig)
	}
}

func TestLoadSettingsMissingFileKeepsDefaults(t *testing.T) {
	resetSettings(t)
	configPath = filepath.Join(t.TempDir(), "missing.yml")
	if err := loadSettings(StartCmd); err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if config.LedgerConfig.Difficulty != 2 || config.LedgerConfig.Reward != 100 {
		t.Fatalf("missing file dropped the defaults: %+v", *config.LedgerConfig)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	resetSettings(t)
	configPath = writeSettings(t, "ledger:\n  miner: bob\n")
	if err := loadSettings(StartCmd); err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if config.LedgerConfig.Miner != "bob" {
		t.Errorf("file value not applied: %+v", *config.LedgerConfig)
	}
	if config.LedgerConfig.Difficulty != 2 || config.LedgerConfig.Reward != 100 {
		t.Errorf("values missing from the file lost their defaults: %+v", *config.LedgerConfig)
	}
	if config.LoggerConfig.Level != "info" {
		t.Errorf("log level lost its default: %+v", *config.LoggerConfig)
	}
}

func TestLoadSettingsFlagWinsOverFile(t *testing.T) {
	resetSettings(t)
	configPath = writeSettings(t, "ledger:\n  miner: from-file\n  difficulty: 5\n  reward: 7\n  predicate: decimal-prefix\nlogger:\n  level: warn\n")
	setFlag(t, difficulty, "3")

	if err := loadSettings(StartCmd); err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if config.LedgerConfig.Difficulty != 3 {
		t.Errorf("explicit flag should win, got difficulty %d", config.LedgerConfig.Difficulty)
	}
	if config.LedgerConfig.Miner != "from-file" || config.LedgerConfig.Reward != 7 {
		t.Errorf("file values overwritten: %+v", *config.LedgerConfig)
	}
	if config.LedgerConfig.Predicate != "decimal-prefix" || config.LoggerConfig.Level != "warn" {
		t.Errorf("file values overwritten: %+v %+v", *config.LedgerConfig, *config.LoggerConfig)
	}
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	resetSettings(t)
	*config.LedgerConfig = config.Ledger{Miner: "kept", Difficulty: 5, Reward: 7, Predicate: "decimal-prefix"}
	setFlag(t, reward, "9")

	applyFlags(StartCmd, true)
	if config.LedgerConfig.Reward != 9 {
		t.Errorf("changed flag not applied: %+v", *config.LedgerConfig)
	}
	if config.LedgerConfig.Miner != "kept" || config.LedgerConfig.Difficulty != 5 {
		t.Errorf("unchanged flags overwrote settings: %+v", *config.LedgerConfig)
	}
}
