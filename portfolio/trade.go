// portfolio/trade.go
package portfolio

import "fmt"

// SwapType tags the kind of financial position a trade represents. It
// occupies the low byte of a TokenID so a position can be classified
// without decoding the rest of the id.
type SwapType uint8

const (
	// SwapPayerCash is an obligation to pay a fixed amount at maturity.
	SwapPayerCash SwapType = 1
	// SwapReceiverCash is an entitlement to receive a fixed amount at maturity.
	SwapReceiverCash SwapType = 2
	// SwapLiquidityToken is a pro-rata claim on a market's pooled
	// collateral and future-cash totals at maturity.
	SwapLiquidityToken SwapType = 3
	// SwapDeposit is idle collateral parked with the ledger. It is a valid
	// position but carries no cash-ladder exposure.
	SwapDeposit SwapType = 4
)

// Valid reports whether s is a defined swap-type tag.
func (s SwapType) Valid() bool {
	return s >= SwapPayerCash && s <= SwapDeposit
}

func (s SwapType) String() string {
	switch s {
	case SwapPayerCash:
		return "payer"
	case SwapReceiverCash:
		return "receiver"
	case SwapLiquidityToken:
		return "liquidity"
	case SwapDeposit:
		return "deposit"
	default:
		return fmt.Sprintf("swap(%d)", uint8(s))
	}
}

// ParseSwapType maps the string form back to the tag. Accepts the short
// names printed by String.
func ParseSwapType(s string) (SwapType, error) {
	switch s {
	case "payer":
		return SwapPayerCash, nil
	case "receiver":
		return SwapReceiverCash, nil
	case "liquidity":
		return SwapLiquidityToken, nil
	case "deposit":
		return SwapDeposit, nil
	}
	return 0, fmt.Errorf("unknown swap type %q", s)
}

// TradeKey is the attribute tuple packed into a TokenID. Maturity is
// StartBlock+Duration, computed in 64-bit to avoid wrap.
type TradeKey struct {
	GroupID      uint8
	InstrumentID uint16
	StartBlock   uint32
	Duration     uint32
	SwapType     SwapType
}

// Maturity returns the block at which the position settles.
func (k TradeKey) Maturity() uint64 {
	return uint64(k.StartBlock) + uint64(k.Duration)
}

// Trade is a single fixed-maturity position. Trades are read-only inputs
// to the risk computation; ownership and mutation belong to the ledger.
type Trade struct {
	TradeKey
	// Notional is the position size as a wide unsigned integer. It is
	// checked-narrowed to a signed ledger Amount before any arithmetic.
	Notional uint64
}
