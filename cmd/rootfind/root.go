package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/logging"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:           "rootfind",
	Short:         "Compare Newton-Raphson, bisection and secant root finding",
	Long:          `rootfind runs three root-finding methods on the same function and reports root, iteration count and per-iteration error traces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}
