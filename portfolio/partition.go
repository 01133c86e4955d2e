// portfolio/partition.go
package portfolio

import (
	"errors"
	"sort"
)

// ErrEmptyPortfolio is returned when a computation is invoked with zero
// trades. The risk computation is defined only for non-empty portfolios.
var ErrEmptyPortfolio = errors.New("empty portfolio")

// Partition sorts trades so that all trades of an instrument group are
// contiguous and returns the distinct group ids in the order they appear
// after sorting. The downstream ladder builder detects group boundaries
// with a single linear scan, so contiguity is load-bearing; Partition
// always re-sorts rather than trusting caller ordering.
//
// The input slice is sorted in place. Order within a group is
// (swapType, startBlock, duration) to keep output deterministic.
func Partition(trades []Trade) ([]uint8, error) {
	if len(trades) == 0 {
		return nil, ErrEmptyPortfolio
	}

	sort.Slice(trades, func(i, j int) bool {
		a, b := trades[i], trades[j]
		if a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.SwapType != b.SwapType {
			return a.SwapType < b.SwapType
		}
		if a.StartBlock != b.StartBlock {
			return a.StartBlock < b.StartBlock
		}
		return a.Duration < b.Duration
	})

	groups := []uint8{trades[0].GroupID}
	for _, t := range trades[1:] {
		if t.GroupID != groups[len(groups)-1] {
			groups = append(groups, t.GroupID)
		}
	}
	return groups, nil
}
