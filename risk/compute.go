// Package risk computes collateral requirements for a portfolio of
// fixed-maturity trades. The computation is a pure function of its inputs:
// partition the portfolio by instrument group, fold each group's trades
// into a time-bucketed cash ladder, split liquidity-token positions into
// certain collateral (NPV) and uncertain future cash, then haircut every
// negative ladder bucket into one per-currency requirement record.
//
// All inputs are snapshots owned by the caller for the duration of one
// call; concurrent computations over different portfolios need no
// coordination. If oracle data is refreshed concurrently, snapshot
// consistency is the caller's responsibility.
package risk

import (
	"fmt"

	"github.com/rustyeddy/collateral/market"
	"github.com/rustyeddy/collateral/portfolio"
)

// Compute is the sole entry point. It sorts trades in place (so trades of
// one instrument group are contiguous), resolves group metadata through
// the directory in one batch, builds the cash ladders, and aggregates one
// Requirement per group.
//
// Any failure aborts the whole call; no trade is skipped.
func Compute(dir market.Directory, trades []portfolio.Trade, blockNow uint64, haircutBps uint64) ([]Requirement, error) {
	groupIDs, err := portfolio.Partition(trades)
	if err != nil {
		return nil, err
	}

	groups, err := dir.ResolveGroups(groupIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve instrument groups: %w", err)
	}

	ladders, npvs, err := buildLadders(trades, groups, blockNow)
	if err != nil {
		return nil, err
	}

	return aggregate(ladders, npvs, haircutBps)
}
