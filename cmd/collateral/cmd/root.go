package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collateral",
	Short: "Collateral requirement engine for fixed-maturity portfolios",
	Long: `Collateral computes the collateral an account must post against a
portfolio of fixed-maturity positions.

It provides tools for:
  - Maintaining a SQLite trade ledger per account
  - Importing and exporting portfolio snapshots (CSV, optionally xz)
  - Computing per-currency requirements from cash ladders and haircuts
  - Recording and querying a computation audit trail

Complete documentation is available at https://github.com/rustyeddy/collateral`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	},
}

var verbose bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
