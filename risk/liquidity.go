// risk/liquidity.go
package risk

import (
	"fmt"

	"github.com/rustyeddy/collateral/market"
)

// liquidityClaim is a liquidity-token position split into its two parts:
// collateral that is extractable today (certain value, counted as NPV) and
// future cash that still needs a market trade to realize (uncertain,
// counted only in the ladder).
type liquidityClaim struct {
	Collateral market.Amount
	FutureCash market.Amount
}

// splitLiquidity derives the pro-rata claim a position of the given
// notional holds against a market's pooled totals:
//
//	collateral = totals.Collateral * notional / totals.Liquidity
//	futureCash = totals.FutureCash * notional / totals.Liquidity
//
// Products are taken at double width before dividing. A market with zero
// issued liquidity yields ErrZeroLiquidity; a claim out of ledger range
// yields ErrAmountOverflow.
func splitLiquidity(notional uint64, totals market.MarketTotals) (liquidityClaim, error) {
	if totals.Liquidity == 0 {
		return liquidityClaim{}, ErrZeroLiquidity
	}

	cu, err := mulDiv(totals.Collateral, notional, totals.Liquidity)
	if err != nil {
		return liquidityClaim{}, fmt.Errorf("collateral claim: %w", err)
	}
	collateral, err := narrow(cu)
	if err != nil {
		return liquidityClaim{}, fmt.Errorf("collateral claim: %w", err)
	}

	fu, err := mulDiv(totals.FutureCash, notional, totals.Liquidity)
	if err != nil {
		return liquidityClaim{}, fmt.Errorf("future cash claim: %w", err)
	}
	futureCash, err := narrow(fu)
	if err != nil {
		return liquidityClaim{}, fmt.Errorf("future cash claim: %w", err)
	}

	return liquidityClaim{Collateral: collateral, FutureCash: futureCash}, nil
}
