package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDirectoryResolveGroups(t *testing.T) {
	t.Parallel()

	dir, err := NewStaticDirectory([]InstrumentGroup{
		{ID: 1, Currency: "USD", PeriodSize: 100, NumPeriods: 10},
		{ID: 2, Currency: "EUR", PeriodSize: 50, NumPeriods: 20},
	})
	require.NoError(t, err)

	// Results come back in request order, not registration order.
	groups, err := dir.ResolveGroups([]uint8{2, 1})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "EUR", groups[0].Currency)
	assert.Equal(t, "USD", groups[1].Currency)

	// One unknown id fails the whole call.
	_, err = dir.ResolveGroups([]uint8{1, 9})
	assert.Error(t, err)

	assert.Equal(t, []uint8{1, 2}, dir.GroupIDs())
}

func TestStaticDirectoryValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		groups []InstrumentGroup
	}{
		{
			name: "missing_currency",
			groups: []InstrumentGroup{
				{ID: 1, PeriodSize: 100, NumPeriods: 10},
			},
		},
		{
			name: "zero_period_size",
			groups: []InstrumentGroup{
				{ID: 1, Currency: "USD", NumPeriods: 10},
			},
		},
		{
			name: "zero_num_periods",
			groups: []InstrumentGroup{
				{ID: 1, Currency: "USD", PeriodSize: 100},
			},
		},
		{
			name: "duplicate_id",
			groups: []InstrumentGroup{
				{ID: 1, Currency: "USD", PeriodSize: 100, NumPeriods: 10},
				{ID: 1, Currency: "EUR", PeriodSize: 100, NumPeriods: 10},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewStaticDirectory(tt.groups)
			assert.Error(t, err)
		})
	}
}

func TestStaticOracle(t *testing.T) {
	t.Parallel()

	oracle := NewStaticOracle(map[uint64]MarketTotals{
		1250: {FutureCash: 2000, Liquidity: 500, Collateral: 1000},
	})

	totals, err := oracle.MarketTotals(1250)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), totals.Liquidity)

	_, err = oracle.MarketTotals(9999)
	assert.Error(t, err)

	oracle.SetTotals(1300, MarketTotals{Liquidity: 1})
	totals, err = oracle.MarketTotals(1300)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), totals.Liquidity)
}
