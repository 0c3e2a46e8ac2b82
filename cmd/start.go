package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bitxx/load-config/source/file"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/powchain/config"
	"github.com/luca-patrignani/powchain/ledger"
)

var configPath string

const (
	miner       = "miner"
	difficulty  = "difficulty"
	reward      = "reward"
	maxAttempts = "max-attempts"
	predicate   = "predicate"
	logLevel    = "log-level"
)

// StartCmd builds the ledger and opens the interactive menu.
var StartCmd = &cobra.Command{
	Use:          "start",
	Short:        "start the interactive ledger",
	Example:      "powchain start -c config/settings.yml --difficulty 3",
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	cmd := StartCmd.PersistentFlags()
	cmd.StringVarP(&configPath, "config", "c", "", "Start with the provided settings file")

	cmd.String(miner, "", "miner address receiving block rewards, generated when empty")
	cmd.Uint32(difficulty, 2, "number of leading zero hex characters of a block hash")
	cmd.Float64(reward, ledger.DefaultReward, "reward paid to the miner for every block")
	cmd.Uint64(maxAttempts, 0, "hashes tried per block before giving up, 0 for no limit")
	cmd.String(predicate, "zero-prefix", "zero-prefix, decimal-prefix")
	cmd.String(logLevel, "info", "debug, info, warn, error")
}

// loadSettings layers the settings: flag defaults, then the settings file,
// then the flags set on the command line.
func loadSettings(cmd *cobra.Command) error {
	applyFlags(cmd, false)
	if configPath != "" {
		config.Setup(file.NewSource(file.WithPath(configPath)))
	}
	applyFlags(cmd, true)
	return config.Validate()
}

// applyFlags copies flag values into the settings. With onlyChanged set, only
// flags given on the command line are copied.
func applyFlags(cmd *cobra.Command, onlyChanged bool) {
	flag := cmd.PersistentFlags()
	use := func(name string) bool {
		return !onlyChanged || flag.Changed(name)
	}

	if use(miner) {
		config.LedgerConfig.Miner, _ = flag.GetString(miner)
	}
	if use(difficulty) {
		config.LedgerConfig.Difficulty, _ = flag.GetUint32(difficulty)
	}
	if use(reward) {
		config.LedgerConfig.Reward, _ = flag.GetFloat64(reward)
	}
	if use(maxAttempts) {
		config.LedgerConfig.MaxAttempts, _ = flag.GetUint64(maxAttempts)
	}
	if use(predicate) || config.LedgerConfig.Predicate == "" {
		config.LedgerConfig.Predicate, _ = flag.GetString(predicate)
	}
	if use(logLevel) || config.LoggerConfig.Level == "" {
		config.LoggerConfig.Level, _ = flag.GetString(logLevel)
	}
}

func run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(config.LoggerConfig)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Pow", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chain", pterm.FgDarkGray.ToStyle()),
	).Render()

	address := config.LedgerConfig.Miner
	if address == "" {
		address, err = newMinerAddress()
		if err != nil {
			return fmt.Errorf("generate miner address: %w", err)
		}
		pterm.Info.Printfln("Generated miner address: %s", address)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Generating genesis block ...")
	mctx, stop := miningContext(ctx)
	l, err := ledger.New(mctx, address, config.LedgerConfig.Difficulty,
		ledger.WithReward(config.LedgerConfig.Reward),
		ledger.WithMiner(config.LedgerConfig.NewMiner()),
		ledger.WithLogger(logger),
	)
	stop()
	if err != nil {
		spinner.Fail("Failed to generate the genesis block")
		return err
	}
	spinner.Success("Genesis block generated")
	printBlock(0, l.Blocks()[0])

	return menu(ctx, l)
}
