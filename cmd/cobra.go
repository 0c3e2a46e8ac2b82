package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "powchain",
	Short:        "single node proof-of-work ledger",
	SilenceUsage: true,
	Long:         "powchain keeps an in-memory hash-chained ledger and seals blocks with proof-of-work",
	Version:      "v1.0.0",
}

func init() {
	rootCmd.AddCommand(StartCmd)
}

// Execute runs the command tree.
func Execute() {
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
