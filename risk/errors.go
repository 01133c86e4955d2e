// risk/errors.go
package risk

import "errors"

// All risk errors are synchronous validation failures. There is no
// transient class here (no I/O beyond oracle lookups the caller resolved
// into snapshots), and every one of them aborts the whole computation: a
// partial requirement understates risk, so no trade is ever skipped.
var (
	// ErrMaturityOutOfRange marks a trade that has already matured or
	// whose maturity falls beyond the group's ladder. Callers are expected
	// to filter matured trades before computing.
	ErrMaturityOutOfRange = errors.New("trade maturity outside ladder range")

	// ErrZeroLiquidity marks a liquidity claim against a market with zero
	// issued liquidity units. It signals inconsistent market data and is
	// surfaced rather than treated as a zero claim.
	ErrZeroLiquidity = errors.New("market has zero liquidity")

	// ErrAmountOverflow marks a wide-integer result that does not fit the
	// fixed-width ledger amount, or a bucket/npv accumulation that would
	// wrap. Wraparound in monetary math is a correctness violation.
	ErrAmountOverflow = errors.New("amount overflows ledger width")

	// ErrRequirementOverflow marks a haircut accumulation that overflows
	// the unsigned requirement total.
	ErrRequirementOverflow = errors.New("requirement accumulation overflows")
)
