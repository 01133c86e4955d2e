// portfolio/tokenid.go
//
// A trade's attributes pack into one 96-bit identifier so a transfer or
// balance layer can treat positions as opaque tokens. Layout from the low
// bit upward:
//
//	swapType(8) | duration(32) | startBlock(32) | instrumentId(16) | groupId(8)
//
// The swap type sits in the low byte so classification is a single mask.
// Encode/decode is a bijection over the valid field ranges.
package portfolio

import (
	"fmt"
	"strconv"
)

// TokenID holds the 96-bit packed identifier in the low bits of a
// (Hi, Lo) uint64 pair. Hi carries bits 64..95.
type TokenID struct {
	Hi uint64
	Lo uint64
}

// EncodeTokenID packs the attribute tuple into a TokenID. Pure; no
// failure modes, every TradeKey value has an encoding.
func EncodeTokenID(k TradeKey) TokenID {
	// StartBlock straddles the word boundary: bits 40..63 in Lo, 64..71 in Hi.
	lo := uint64(k.SwapType) | uint64(k.Duration)<<8 | uint64(k.StartBlock)<<40
	hi := uint64(k.StartBlock)>>24 | uint64(k.InstrumentID)<<8 | uint64(k.GroupID)<<24
	return TokenID{Hi: hi, Lo: lo}
}

// DecodeTokenID unpacks a TokenID back into the attribute tuple. It fails
// on malformed bit ranges: a swap-type byte outside the defined tag set or
// set bits above the 96-bit layout.
func DecodeTokenID(id TokenID) (TradeKey, error) {
	if id.Hi>>32 != 0 {
		return TradeKey{}, fmt.Errorf("token id %s: bits set above the 96-bit layout", id)
	}
	k := TradeKey{
		SwapType:     SwapType(id.Lo & 0xff),
		Duration:     uint32(id.Lo >> 8),
		StartBlock:   uint32(id.Lo>>40) | uint32(id.Hi&0xff)<<24,
		InstrumentID: uint16(id.Hi >> 8),
		GroupID:      uint8(id.Hi >> 24),
	}
	if !k.SwapType.Valid() {
		return TradeKey{}, fmt.Errorf("token id %s: swap type byte 0x%02x outside tag set", id, uint8(k.SwapType))
	}
	return k, nil
}

// String renders the id as fixed-width hex, zero-padded to 24 digits so
// ids sort lexicographically in the ledger.
func (id TokenID) String() string {
	return fmt.Sprintf("%08x%016x", uint32(id.Hi), id.Lo)
}

// ParseTokenID reverses String.
func ParseTokenID(s string) (TokenID, error) {
	if len(s) != 24 {
		return TokenID{}, fmt.Errorf("token id %q: want 24 hex digits, got %d", s, len(s))
	}
	hi, err := strconv.ParseUint(s[:8], 16, 32)
	if err != nil {
		return TokenID{}, fmt.Errorf("token id %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(s[8:], 16, 64)
	if err != nil {
		return TokenID{}, fmt.Errorf("token id %q: %w", s, err)
	}
	return TokenID{Hi: hi, Lo: lo}, nil
}
