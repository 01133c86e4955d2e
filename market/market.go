// market/market.go
package market

import "fmt"

// Amount is a fixed-width signed monetary amount in an instrument group's
// currency. All arithmetic on Amounts must be overflow-checked; see the
// risk package.
type Amount int64

// MarketTotals are the aggregate totals an oracle reports for one maturity:
// claimable collateral, claimable future cash, and issued liquidity units.
type MarketTotals struct {
	FutureCash uint64
	Liquidity  uint64
	Collateral uint64
}

// MarketOracle reports aggregate market totals for a maturity block.
//
// The computation core depends only on this interface, never on how the
// oracle is resolved, so a test double can stand in for a live feed.
type MarketOracle interface {
	MarketTotals(maturity uint64) (MarketTotals, error)
}

// InstrumentGroup is the resolved metadata for one group of trades sharing
// a market and currency. Read-only for the duration of a computation.
type InstrumentGroup struct {
	ID         uint8
	Currency   string // "USD", "EUR", ...
	PeriodSize uint32 // blocks per maturity bucket
	NumPeriods uint32 // ladder width
	Oracle     MarketOracle
}

// Directory resolves instrument-group ids to their metadata.
type Directory interface {
	// ResolveGroups returns one InstrumentGroup per requested id, in
	// request order. An unknown id fails the whole call.
	ResolveGroups(ids []uint8) ([]InstrumentGroup, error)
}

func (g InstrumentGroup) validate() error {
	if g.Currency == "" {
		return fmt.Errorf("group %d: currency is required", g.ID)
	}
	if g.PeriodSize == 0 {
		return fmt.Errorf("group %d: period_size must be positive", g.ID)
	}
	if g.NumPeriods == 0 {
		return fmt.Errorf("group %d: num_periods must be positive", g.ID)
	}
	return nil
}
