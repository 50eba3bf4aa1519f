package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "concreteness",
		Short:        "Measure how concrete or abstract English text is",
		Long:         `concreteness rates words on a 1 (abstract) to 5 (concrete) scale and aggregates the ratings over texts and documents`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newWordCmd())
	rootCmd.AddCommand(newAvgCmd())
	rootCmd.AddCommand(newRatioCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCacheCmd())

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: nearest "+configFileHint+")")
	flags.String("ratings", "", "CSV ratings dataset (default: embedded)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("log-level", "", "log level (debug|info|error)")
	flags.Bool("no-snapshot", false, "do not read or write the ratings snapshot cache")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
