package portfolio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIDRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  TradeKey
	}{
		{
			name: "zero_fields_payer",
			key:  TradeKey{SwapType: SwapPayerCash},
		},
		{
			name: "typical_receiver",
			key: TradeKey{
				GroupID:      1,
				InstrumentID: 7,
				StartBlock:   1_200_000,
				Duration:     100_000,
				SwapType:     SwapReceiverCash,
			},
		},
		{
			name: "max_fields_liquidity",
			key: TradeKey{
				GroupID:      math.MaxUint8,
				InstrumentID: math.MaxUint16,
				StartBlock:   math.MaxUint32,
				Duration:     math.MaxUint32,
				SwapType:     SwapLiquidityToken,
			},
		},
		{
			name: "start_block_straddles_word_boundary",
			key: TradeKey{
				GroupID:      42,
				InstrumentID: 9,
				StartBlock:   0xAB00_00CD, // high byte lands in Hi, low bytes in Lo
				Duration:     5,
				SwapType:     SwapDeposit,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := EncodeTokenID(tt.key)
			got, err := DecodeTokenID(id)
			require.NoError(t, err)
			assert.Equal(t, tt.key, got)

			// String form round-trips too.
			parsed, err := ParseTokenID(id.String())
			require.NoError(t, err)
			assert.Equal(t, id, parsed)
		})
	}
}

func TestTokenIDRoundTripSweep(t *testing.T) {
	t.Parallel()

	// Walk a spread of values across every field.
	for _, group := range []uint8{0, 1, 128, 255} {
		for _, instr := range []uint16{0, 500, 65535} {
			for _, start := range []uint32{0, 1, 1 << 24, math.MaxUint32} {
				for _, swap := range []SwapType{SwapPayerCash, SwapReceiverCash, SwapLiquidityToken, SwapDeposit} {
					key := TradeKey{
						GroupID:      group,
						InstrumentID: instr,
						StartBlock:   start,
						Duration:     start ^ 0x5555,
						SwapType:     swap,
					}
					got, err := DecodeTokenID(EncodeTokenID(key))
					require.NoError(t, err)
					require.Equal(t, key, got)
				}
			}
		}
	}
}

func TestDecodeTokenIDRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   TokenID
	}{
		{
			name: "swap_type_zero",
			id:   EncodeTokenID(TradeKey{GroupID: 1, SwapType: 0}),
		},
		{
			name: "swap_type_outside_tag_set",
			id:   EncodeTokenID(TradeKey{GroupID: 1, SwapType: 200}),
		},
		{
			name: "bits_above_layout",
			id:   TokenID{Hi: 1 << 32, Lo: uint64(SwapPayerCash)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeTokenID(tt.id)
			assert.Error(t, err)
		})
	}
}

func TestSwapTypeInLowByte(t *testing.T) {
	t.Parallel()

	// Classification without a full decode is part of the layout contract.
	id := EncodeTokenID(TradeKey{
		GroupID:      9,
		InstrumentID: 100,
		StartBlock:   500_000,
		Duration:     10_000,
		SwapType:     SwapLiquidityToken,
	})
	assert.Equal(t, SwapLiquidityToken, SwapType(id.Lo&0xff))
}

func TestParseTokenIDErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseTokenID("short")
	assert.Error(t, err)

	_, err = ParseTokenID("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.Error(t, err)
}
