package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/collateral/market"
)

func TestSplitLiquidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		notional   uint64
		totals     market.MarketTotals
		collateral market.Amount
		futureCash market.Amount
	}{
		{
			name:       "pro_rata_split",
			notional:   100,
			totals:     market.MarketTotals{Collateral: 1000, FutureCash: 2000, Liquidity: 500},
			collateral: 200,
			futureCash: 400,
		},
		{
			name:       "whole_market",
			notional:   500,
			totals:     market.MarketTotals{Collateral: 1000, FutureCash: 2000, Liquidity: 500},
			collateral: 1000,
			futureCash: 2000,
		},
		{
			name:       "truncates_toward_zero",
			notional:   1,
			totals:     market.MarketTotals{Collateral: 10, FutureCash: 5, Liquidity: 3},
			collateral: 3,
			futureCash: 1,
		},
		{
			name:       "zero_notional",
			notional:   0,
			totals:     market.MarketTotals{Collateral: 1000, FutureCash: 2000, Liquidity: 500},
			collateral: 0,
			futureCash: 0,
		},
		{
			name:     "wide_intermediate_product",
			notional: 1 << 40,
			totals: market.MarketTotals{
				Collateral: 1 << 40, // product is 2^80, far past 64 bits
				FutureCash: 1 << 41,
				Liquidity:  1 << 30,
			},
			collateral: 1 << 50,
			futureCash: 1 << 51,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claim, err := splitLiquidity(tt.notional, tt.totals)
			require.NoError(t, err)
			assert.Equal(t, tt.collateral, claim.Collateral)
			assert.Equal(t, tt.futureCash, claim.FutureCash)
		})
	}
}

func TestSplitLiquidityZeroLiquidity(t *testing.T) {
	t.Parallel()

	// A degenerate market must surface an error, never a zero claim.
	_, err := splitLiquidity(100, market.MarketTotals{Collateral: 1000, FutureCash: 2000})
	assert.ErrorIs(t, err, ErrZeroLiquidity)

	_, err = splitLiquidity(0, market.MarketTotals{})
	assert.ErrorIs(t, err, ErrZeroLiquidity)
}

func TestSplitLiquidityNarrowingOverflow(t *testing.T) {
	t.Parallel()

	// Claim is computable in 64 unsigned bits but not representable as a
	// signed ledger amount.
	_, err := splitLiquidity(2, market.MarketTotals{
		Collateral: math.MaxInt64,
		FutureCash: 1,
		Liquidity:  1,
	})
	assert.ErrorIs(t, err, ErrAmountOverflow)
}
