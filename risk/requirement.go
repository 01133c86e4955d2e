// risk/requirement.go
package risk

import (
	"fmt"

	"github.com/rustyeddy/collateral/market"
)

// HaircutScale is the denominator of the haircut parameter: a haircut of
// 10_000 bps collateralizes shortfalls at 100%.
const HaircutScale = 10_000

// Requirement is the terminal output for one instrument group: its
// currency, the NPV of certain collateral claims, a snapshot of the cash
// ladder, and the collateral required against negative buckets.
type Requirement struct {
	Currency    string
	NPV         market.Amount
	CashLadder  []market.Amount
	Requirement uint64
}

// aggregate turns each group's ladder and NPV into a Requirement. Every
// negative bucket contributes |bucket| * haircutBps / HaircutScale;
// positive buckets never offset negative ones, since each period's
// shortfall must be independently collateralized.
func aggregate(ladders []CashLadder, npvs []market.Amount, haircutBps uint64) ([]Requirement, error) {
	reqs := make([]Requirement, len(ladders))
	for i, l := range ladders {
		var total uint64
		for j, b := range l.Buckets {
			if b >= 0 {
				continue
			}
			shortfall := absAmount(b)
			cut, err := mulDiv(shortfall, haircutBps, HaircutScale)
			if err != nil {
				return nil, fmt.Errorf("group %d bucket %d: %w", l.GroupID, j, err)
			}
			total, err = addUnsigned(total, cut)
			if err != nil {
				return nil, fmt.Errorf("group %d bucket %d: %w", l.GroupID, j, err)
			}
		}
		reqs[i] = Requirement{
			Currency:    l.Currency,
			NPV:         npvs[i],
			CashLadder:  append([]market.Amount(nil), l.Buckets...),
			Requirement: total,
		}
	}
	return reqs, nil
}

// absAmount returns |a| as unsigned, exact even for the minimum int64.
func absAmount(a market.Amount) uint64 {
	if a >= 0 {
		return uint64(a)
	}
	return -uint64(a)
}
