// market/static.go
package market

import (
	"fmt"
	"sort"
)

// StaticOracle serves market totals from a fixed in-memory table keyed by
// maturity block. It backs config-driven runs and doubles as a test fixture.
type StaticOracle struct {
	totals map[uint64]MarketTotals
}

func NewStaticOracle(totals map[uint64]MarketTotals) *StaticOracle {
	cp := make(map[uint64]MarketTotals, len(totals))
	for m, t := range totals {
		cp[m] = t
	}
	return &StaticOracle{totals: cp}
}

func (o *StaticOracle) MarketTotals(maturity uint64) (MarketTotals, error) {
	t, ok := o.totals[maturity]
	if !ok {
		return MarketTotals{}, fmt.Errorf("no market totals for maturity %d", maturity)
	}
	return t, nil
}

// SetTotals replaces the totals for one maturity. Not safe for use
// concurrently with a computation; callers own snapshot consistency.
func (o *StaticOracle) SetTotals(maturity uint64, t MarketTotals) {
	o.totals[maturity] = t
}

// StaticDirectory resolves instrument groups from a fixed in-memory set.
type StaticDirectory struct {
	groups map[uint8]InstrumentGroup
}

func NewStaticDirectory(groups []InstrumentGroup) (*StaticDirectory, error) {
	byID := make(map[uint8]InstrumentGroup, len(groups))
	for _, g := range groups {
		if err := g.validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate instrument group id %d", g.ID)
		}
		byID[g.ID] = g
	}
	return &StaticDirectory{groups: byID}, nil
}

func (d *StaticDirectory) ResolveGroups(ids []uint8) ([]InstrumentGroup, error) {
	out := make([]InstrumentGroup, 0, len(ids))
	for _, id := range ids {
		g, ok := d.groups[id]
		if !ok {
			return nil, fmt.Errorf("unknown instrument group %d", id)
		}
		out = append(out, g)
	}
	return out, nil
}

// GroupIDs returns every registered group id in ascending order.
func (d *StaticDirectory) GroupIDs() []uint8 {
	ids := make([]uint8, 0, len(d.groups))
	for id := range d.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
