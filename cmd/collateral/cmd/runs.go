package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/collateral/ledger"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Query recorded computation runs",
	Long: `Query the audit trail of recorded requirement computations.

Subcommands:
  list  - List an account's runs, newest first
  show  - Show one run's per-currency requirements and ladders

Examples:
  collateral runs list -a ACCT-001
  collateral runs show 01J8ZQ5H2M3N4P5Q6R7S8T9V0W`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an account's runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var (
	runsDBPath  string
	runsAccount string
)

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)

	runsCmd.PersistentFlags().StringVarP(&runsDBPath, "db", "d", "./collateral.sqlite", "path to ledger DB")
	runsListCmd.Flags().StringVarP(&runsAccount, "account", "a", "", "account (required)")
	runsListCmd.MarkFlagRequired("account")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	l, err := ledger.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer l.Close()

	runs, err := l.ListRuns(runsAccount)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("No runs for account %s\n", runsAccount)
		return nil
	}

	fmt.Printf("%-26s %12s %12s %-20s\n", "RUN", "BLOCK", "HAIRCUT", "CREATED")
	for _, r := range runs {
		fmt.Printf("%-26s %12d %12d %-20s\n",
			r.RunID, r.Block, r.HaircutBps, r.Created.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	l, err := ledger.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer l.Close()

	r, err := l.Run(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", r.RunID)
	fmt.Printf("  Account: %s  Block: %d  Haircut: %d bps  Created: %s\n",
		r.Account, r.Block, r.HaircutBps, r.Created.Format("2006-01-02 15:04:05"))
	for _, rec := range r.Requirements {
		fmt.Printf("  %-4s  npv %12d  requirement %12d\n", rec.Currency, rec.NPV, rec.Requirement)
		fmt.Printf("        ladder %v\n", rec.Ladder)
	}
	return nil
}
