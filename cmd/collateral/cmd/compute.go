package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/collateral/config"
	"github.com/rustyeddy/collateral/ledger"
	"github.com/rustyeddy/collateral/pkg/id"
	"github.com/rustyeddy/collateral/risk"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute collateral requirements for an account",
	Long: `Load an account's portfolio from the ledger, compute its per-currency
collateral requirements at the given block, and record the run.

Example:
  collateral compute -f collateral.yaml -a ACCT-001 -b 1300000`,
	RunE: runCompute,
}

var (
	computeConfigPath string
	computeDBPath     string
	computeAccount    string
	computeBlock      uint64
	computeHaircut    uint64
	computeDryRun     bool
)

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVarP(&computeConfigPath, "config", "f", "collateral.yaml", "path to config file")
	computeCmd.Flags().StringVarP(&computeDBPath, "db", "d", "", "ledger DB path (overrides config)")
	computeCmd.Flags().StringVarP(&computeAccount, "account", "a", "", "account to compute (required)")
	computeCmd.Flags().Uint64VarP(&computeBlock, "block", "b", 0, "current block number (required)")
	computeCmd.Flags().Uint64Var(&computeHaircut, "haircut", 0, "haircut in bps (overrides config)")
	computeCmd.Flags().BoolVar(&computeDryRun, "dry-run", false, "compute without recording the run")
	computeCmd.MarkFlagRequired("account")
	computeCmd.MarkFlagRequired("block")
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(computeConfigPath)
	if err != nil {
		return err
	}

	haircut := cfg.HaircutBps
	if computeHaircut != 0 {
		haircut = computeHaircut
	}
	dbPath := cfg.Ledger.DBPath
	if computeDBPath != "" {
		dbPath = computeDBPath
	}

	dir, err := cfg.Market()
	if err != nil {
		return err
	}

	l, err := ledger.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer l.Close()

	trades, err := l.Trades(computeAccount)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	log.Debug().Str("account", computeAccount).Int("trades", len(trades)).
		Uint64("block", computeBlock).Uint64("haircut_bps", haircut).
		Msg("computing requirements")

	reqs, err := risk.Compute(dir, trades, computeBlock, haircut)
	if err != nil {
		return fmt.Errorf("compute requirements: %w", err)
	}

	fmt.Printf("Account %s at block %d (haircut %d bps):\n", computeAccount, computeBlock, haircut)
	for _, r := range reqs {
		fmt.Printf("  %-4s  npv %12d  requirement %12d\n", r.Currency, r.NPV, r.Requirement)
	}

	if computeDryRun {
		return nil
	}

	run := ledger.Run{
		RunID:      id.New(),
		Account:    computeAccount,
		Block:      computeBlock,
		HaircutBps: haircut,
		Created:    time.Now().UTC(),
	}
	for _, r := range reqs {
		run.Requirements = append(run.Requirements, ledger.RequirementRecord{
			Currency:    r.Currency,
			NPV:         r.NPV,
			Requirement: r.Requirement,
			Ladder:      r.CashLadder,
		})
	}
	if err := l.RecordRun(run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	fmt.Printf("Recorded run %s\n", run.RunID)
	return nil
}
