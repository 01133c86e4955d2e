// risk/ladder.go
package risk

import (
	"fmt"

	"github.com/rustyeddy/collateral/market"
	"github.com/rustyeddy/collateral/portfolio"
)

// CashLadder is one instrument group's time-bucketed net cash flow.
// Bucket j covers blocks [blockNow + j*PeriodSize, blockNow + (j+1)*PeriodSize).
// Ladders are built fresh per computation and never persisted.
type CashLadder struct {
	GroupID  uint8
	Currency string
	Buckets  []market.Amount
}

// buildLadders folds a sorted portfolio into one cash ladder per group
// and accumulates each group's NPV from liquidity-token collateral claims.
//
// trades must be group-contiguous (the partitioner guarantees this) and
// groups must match the partitioner's distinct-id output one to one; a
// mismatch is reported rather than silently producing a wrong ladder.
func buildLadders(trades []portfolio.Trade, groups []market.InstrumentGroup, blockNow uint64) ([]CashLadder, []market.Amount, error) {
	ladders := make([]CashLadder, len(groups))
	npvs := make([]market.Amount, len(groups))
	for i, g := range groups {
		ladders[i] = CashLadder{
			GroupID:  g.ID,
			Currency: g.Currency,
			Buckets:  make([]market.Amount, g.NumPeriods),
		}
	}

	gi := 0
	for _, t := range trades {
		for gi < len(groups) && t.GroupID != groups[gi].ID {
			gi++
		}
		if gi == len(groups) {
			return nil, nil, fmt.Errorf("trade group %d not in resolved group list (portfolio not partitioned?)", t.GroupID)
		}
		g := groups[gi]

		offset, err := bucketOffset(t.TradeKey, g, blockNow)
		if err != nil {
			return nil, nil, err
		}

		switch t.SwapType {
		case portfolio.SwapLiquidityToken:
			totals, err := g.Oracle.MarketTotals(t.Maturity())
			if err != nil {
				return nil, nil, fmt.Errorf("group %d maturity %d: %w", g.ID, t.Maturity(), err)
			}
			claim, err := splitLiquidity(t.Notional, totals)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d maturity %d: %w", g.ID, t.Maturity(), err)
			}
			// Collateral is certain value today; future cash still needs a
			// market trade to realize, so it lands in the ladder, not NPV.
			npvs[gi], err = addChecked(npvs[gi], claim.Collateral)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d npv: %w", g.ID, err)
			}
			ladders[gi].Buckets[offset], err = addChecked(ladders[gi].Buckets[offset], claim.FutureCash)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d bucket %d: %w", g.ID, offset, err)
			}

		case portfolio.SwapPayerCash:
			n, err := narrow(t.Notional)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d: %w", g.ID, err)
			}
			ladders[gi].Buckets[offset], err = subChecked(ladders[gi].Buckets[offset], n)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d bucket %d: %w", g.ID, offset, err)
			}

		case portfolio.SwapReceiverCash:
			n, err := narrow(t.Notional)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d: %w", g.ID, err)
			}
			ladders[gi].Buckets[offset], err = addChecked(ladders[gi].Buckets[offset], n)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d bucket %d: %w", g.ID, offset, err)
			}

		default:
			// Deposits and any future non-exposure tags have no ladder effect.
		}
	}

	return ladders, npvs, nil
}

// bucketOffset maps a trade's maturity onto its group's ladder. Matured
// trades and maturities beyond the ladder fail the computation; the caller
// is expected to have excluded settled positions already.
func bucketOffset(k portfolio.TradeKey, g market.InstrumentGroup, blockNow uint64) (uint32, error) {
	maturity := k.Maturity()
	if maturity <= blockNow {
		return 0, fmt.Errorf("%w: maturity %d at block %d", ErrMaturityOutOfRange, maturity, blockNow)
	}
	offset := (maturity - blockNow) / uint64(g.PeriodSize)
	if offset >= uint64(g.NumPeriods) {
		return 0, fmt.Errorf("%w: maturity %d is %d periods out, ladder holds %d", ErrMaturityOutOfRange, maturity, offset, g.NumPeriods)
	}
	return uint32(offset), nil
}
