// ledger/ledger.go
package ledger

import (
	"time"

	"github.com/rustyeddy/collateral/market"
	"github.com/rustyeddy/collateral/portfolio"
)

// RequirementRecord is one per-currency requirement row of a recorded run.
type RequirementRecord struct {
	Currency    string
	NPV         market.Amount
	Requirement uint64
	Ladder      []market.Amount
}

// Run is one recorded computation: its inputs (account, block, haircut)
// and the requirement records it produced. RunID is a ULID, so runs sort
// by creation time.
type Run struct {
	RunID        string
	Account      string
	Block        uint64
	HaircutBps   uint64
	Created      time.Time
	Requirements []RequirementRecord
}

// Ledger is the portfolio store the risk computation reads from, plus the
// audit trail of computed requirements.
type Ledger interface {
	AddTrade(account string, t portfolio.Trade) error
	RemoveTrade(account string, id portfolio.TokenID) error
	Trades(account string) ([]portfolio.Trade, error)
	Accounts() ([]string, error)

	RecordRun(Run) error
	Run(runID string) (Run, error)
	ListRuns(account string) ([]Run, error)

	Close() error
}
