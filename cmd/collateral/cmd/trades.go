package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/collateral/ledger"
	"github.com/rustyeddy/collateral/portfolio"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Maintain the trade ledger",
	Long: `Add, remove, list, import and export trades per account.

Subcommands:
  add     - Add a single trade
  rm      - Remove a trade by token id
  list    - List an account's trades
  import  - Import a CSV (or CSV.xz) portfolio snapshot
  export  - Write an account's portfolio as CSV to stdout

Examples:
  collateral trades add -a ACCT-001 --group 1 --instrument 7 --swap payer --start 1200000 --duration 100000 --notional 250000
  collateral trades import -a ACCT-001 snapshot.csv.xz
  collateral trades list -a ACCT-001`,
}

var tradesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single trade to an account",
	Args:  cobra.NoArgs,
	RunE:  runTradesAdd,
}

var tradesRmCmd = &cobra.Command{
	Use:   "rm <token-id>",
	Short: "Remove a trade from an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesRm,
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an account's trades",
	Args:  cobra.NoArgs,
	RunE:  runTradesList,
}

var tradesImportCmd = &cobra.Command{
	Use:   "import <snapshot.csv[.xz]>",
	Short: "Import a portfolio snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesImport,
}

var tradesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write an account's portfolio as CSV to stdout",
	Args:  cobra.NoArgs,
	RunE:  runTradesExport,
}

var (
	tradesDBPath  string
	tradesAccount string

	addGroup      uint8
	addInstrument uint16
	addSwap       string
	addStart      uint32
	addDuration   uint32
	addNotional   uint64
)

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesAddCmd)
	tradesCmd.AddCommand(tradesRmCmd)
	tradesCmd.AddCommand(tradesListCmd)
	tradesCmd.AddCommand(tradesImportCmd)
	tradesCmd.AddCommand(tradesExportCmd)

	tradesCmd.PersistentFlags().StringVarP(&tradesDBPath, "db", "d", "./collateral.sqlite", "path to ledger DB")
	tradesCmd.PersistentFlags().StringVarP(&tradesAccount, "account", "a", "", "account (required)")
	tradesCmd.MarkPersistentFlagRequired("account")

	tradesAddCmd.Flags().Uint8Var(&addGroup, "group", 0, "instrument group id")
	tradesAddCmd.Flags().Uint16Var(&addInstrument, "instrument", 0, "instrument id")
	tradesAddCmd.Flags().StringVar(&addSwap, "swap", "", "swap type: payer|receiver|liquidity|deposit")
	tradesAddCmd.Flags().Uint32Var(&addStart, "start", 0, "start block")
	tradesAddCmd.Flags().Uint32Var(&addDuration, "duration", 0, "duration in blocks")
	tradesAddCmd.Flags().Uint64Var(&addNotional, "notional", 0, "notional amount")
	tradesAddCmd.MarkFlagRequired("swap")
	tradesAddCmd.MarkFlagRequired("notional")
}

func openLedger() (*ledger.SQLite, error) {
	l, err := ledger.NewSQLite(tradesDBPath)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return l, nil
}

func runTradesAdd(cmd *cobra.Command, args []string) error {
	swap, err := portfolio.ParseSwapType(addSwap)
	if err != nil {
		return err
	}

	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	t := portfolio.Trade{
		TradeKey: portfolio.TradeKey{
			GroupID:      addGroup,
			InstrumentID: addInstrument,
			StartBlock:   addStart,
			Duration:     addDuration,
			SwapType:     swap,
		},
		Notional: addNotional,
	}
	if err := l.AddTrade(tradesAccount, t); err != nil {
		return err
	}

	fmt.Printf("✓ Added trade %s to %s\n", portfolio.EncodeTokenID(t.TradeKey), tradesAccount)
	return nil
}

func runTradesRm(cmd *cobra.Command, args []string) error {
	tid, err := portfolio.ParseTokenID(args[0])
	if err != nil {
		return err
	}

	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.RemoveTrade(tradesAccount, tid); err != nil {
		return err
	}
	fmt.Printf("✓ Removed trade %s from %s\n", tid, tradesAccount)
	return nil
}

func runTradesList(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trades, err := l.Trades(tradesAccount)
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		fmt.Printf("No trades for account %s\n", tradesAccount)
		return nil
	}

	fmt.Printf("%-24s %5s %10s %-9s %10s %10s %14s\n",
		"TOKEN", "GROUP", "INSTRUMENT", "SWAP", "START", "DURATION", "NOTIONAL")
	for _, t := range trades {
		fmt.Printf("%-24s %5d %10d %-9s %10d %10d %14d\n",
			portfolio.EncodeTokenID(t.TradeKey), t.GroupID, t.InstrumentID,
			t.SwapType, t.StartBlock, t.Duration, t.Notional)
	}
	return nil
}

func runTradesImport(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	n, err := ledger.ImportCSV(l, tradesAccount, args[0])
	if err != nil {
		return fmt.Errorf("import (added %d trades before failing): %w", n, err)
	}
	fmt.Printf("✓ Imported %d trades into %s\n", n, tradesAccount)
	return nil
}

func runTradesExport(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	return ledger.ExportCSV(l, tradesAccount, os.Stdout)
}
