package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/collateral/market"
)

func ladderOf(buckets ...market.Amount) CashLadder {
	return CashLadder{GroupID: 1, Currency: "USD", Buckets: buckets}
}

func TestAggregateNoNetting(t *testing.T) {
	t.Parallel()

	// Positive buckets never offset negative ones: [-100, +50] at a 50%
	// haircut is 50, not 25.
	reqs, err := aggregate([]CashLadder{ladderOf(-100, 50)}, []market.Amount{0}, 5000)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, uint64(50), reqs[0].Requirement)
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buckets []market.Amount
		haircut uint64
		want    uint64
	}{
		{name: "all_positive", buckets: []market.Amount{10, 20, 30}, haircut: 10_000, want: 0},
		{name: "all_zero", buckets: []market.Amount{0, 0, 0}, haircut: 10_000, want: 0},
		{name: "full_haircut", buckets: []market.Amount{-100, -200}, haircut: 10_000, want: 300},
		{name: "over_collateralized", buckets: []market.Amount{-100}, haircut: 11_000, want: 110},
		{name: "half_haircut_truncates", buckets: []market.Amount{-101}, haircut: 5000, want: 50},
		{name: "shortfalls_accumulate", buckets: []market.Amount{-100, 500, -300}, haircut: 5000, want: 200},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqs, err := aggregate([]CashLadder{ladderOf(tt.buckets...)}, []market.Amount{7}, tt.haircut)
			require.NoError(t, err)
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.want, reqs[0].Requirement)
			assert.Equal(t, "USD", reqs[0].Currency)
			assert.Equal(t, market.Amount(7), reqs[0].NPV)
			assert.Equal(t, tt.buckets, reqs[0].CashLadder)
		})
	}
}

func TestAggregateMinInt64Bucket(t *testing.T) {
	t.Parallel()

	// |MinInt64| does not fit in int64 but must still haircut correctly.
	reqs, err := aggregate([]CashLadder{ladderOf(math.MinInt64)}, []market.Amount{0}, 10_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, reqs[0].Requirement)
}

func TestAggregateOverflow(t *testing.T) {
	t.Parallel()

	// Two maximal shortfalls at a >100% haircut cannot fit in uint64.
	buckets := []market.Amount{math.MinInt64, math.MinInt64}
	_, err := aggregate([]CashLadder{ladderOf(buckets...)}, []market.Amount{0}, 20_000)
	assert.Error(t, err)
}

func TestAggregateLadderSnapshotIsCopy(t *testing.T) {
	t.Parallel()

	l := ladderOf(-10, 20)
	reqs, err := aggregate([]CashLadder{l}, []market.Amount{0}, 10_000)
	require.NoError(t, err)

	l.Buckets[0] = 999
	assert.Equal(t, market.Amount(-10), reqs[0].CashLadder[0])
}
